package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
)

// AwesomeGenerator renders the full catalog in the long-form "awesome
// list" layout: a table of contents, one heading per category in taxonomy
// order, sub-category groupings, and one entry per active resource.
type AwesomeGenerator struct {
	base
}

// NewAwesome constructs the awesome-style generator.
func NewAwesome(datasetPath, templatesDir, assetsDir, outputRoot string) *AwesomeGenerator {
	return &AwesomeGenerator{
		base: newBase(StyleAwesome, "README.md", datasetPath, templatesDir, assetsDir, outputRoot),
	}
}

// Generate renders the awesome-style document to outputPath (or the style
// default when empty).
func (g *AwesomeGenerator) Generate(outputPath string) (int, []string, error) {
	start := time.Now()
	table, snap, err := g.loadInputs()
	if err != nil {
		return g.fail(err)
	}

	sections := groupSections(table.Active(), snap)
	count := countSections(sections)

	data := g.baseData(count)
	data["TOC"] = awesomeTOC(sections)
	data["BODY"] = awesomeBody(sections)

	content, err := g.renderDocument("readme-awesome", data)
	if err != nil {
		return g.fail(err)
	}
	if err := g.finish(outputPath, content, count, start); err != nil {
		return 0, nil, err
	}
	return count, nil, nil
}

func awesomeTOC(sections []section) string {
	var b strings.Builder
	for i := range sections {
		name := sections[i].Category.Name
		fmt.Fprintf(&b, "- [%s](#%s)\n", name, anchorFor(name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func awesomeBody(sections []section) string {
	var b strings.Builder
	for i := range sections {
		sec := &sections[i]
		fmt.Fprintf(&b, "## %s\n\n", sec.Category.Name)
		if sec.Category.Description != "" {
			fmt.Fprintf(&b, "_%s_\n\n", sec.Category.Description)
		}
		writeEntryList(&b, sec.Entries)
		for _, sub := range sec.Subsections {
			fmt.Fprintf(&b, "### %s\n\n", sub.Name)
			writeEntryList(&b, sub.Entries)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeEntryList(b *strings.Builder, entries []catalog.Resource) {
	if len(entries) == 0 {
		return
	}
	for _, res := range entries {
		fmt.Fprintf(b, "- [%s](%s)", res.DisplayName, res.PrimaryLink)
		if desc := strings.TrimSpace(res.Description); desc != "" {
			fmt.Fprintf(b, " - %s", desc)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

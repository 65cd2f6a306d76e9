package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
)

// ExtraGenerator renders the full catalog with richer per-entry
// presentation: category icons in headings and per-category badge images
// drawn from the asset directory. Missing badge assets degrade to the
// plain entry form and are reported as warnings rather than errors.
type ExtraGenerator struct {
	base
}

// NewExtra constructs the extra/visual-style generator.
func NewExtra(datasetPath, templatesDir, assetsDir, outputRoot string) *ExtraGenerator {
	return &ExtraGenerator{
		base: newBase(StyleExtra, "README-extra.md", datasetPath, templatesDir, assetsDir, outputRoot),
	}
}

func (g *ExtraGenerator) Generate(outputPath string) (int, []string, error) {
	start := time.Now()
	table, snap, err := g.loadInputs()
	if err != nil {
		return g.fail(err)
	}

	sections := groupSections(table.Active(), snap)
	count := countSections(sections)

	body, warnings := g.extraBody(sections)
	data := g.baseData(count)
	data["BODY"] = body

	content, err := g.renderDocument("readme-extra", data)
	if err != nil {
		return g.fail(err)
	}
	if err := g.finish(outputPath, content, count, start); err != nil {
		return 0, nil, err
	}
	return count, warnings, nil
}

func (g *ExtraGenerator) extraBody(sections []section) (string, []string) {
	var b strings.Builder
	var warnings []string
	for i := range sections {
		sec := &sections[i]
		heading := sec.Category.Name
		if sec.Category.Icon != "" {
			heading = sec.Category.Icon + " " + heading
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)

		badge, ok := g.categoryBadge(sec.Category.Slug)
		if ok {
			fmt.Fprintf(&b, "![%s](%s)\n\n", sec.Category.Slug, badge)
		} else {
			warnings = append(warnings,
				fmt.Sprintf("no badge asset for category %q", sec.Category.Slug))
		}

		writeExtraEntries(&b, sec.Entries)
		for _, sub := range sec.Subsections {
			fmt.Fprintf(&b, "### %s\n\n", sub.Name)
			writeExtraEntries(&b, sub.Entries)
		}
	}
	return strings.TrimRight(b.String(), "\n"), warnings
}

// categoryBadge resolves assets/badge-<slug>.svg when it exists.
func (g *ExtraGenerator) categoryBadge(slug string) (string, bool) {
	name := fmt.Sprintf("badge-%s.svg", slug)
	if _, err := os.Stat(filepath.Join(g.assetsDir, name)); err != nil {
		return "", false
	}
	return filepath.ToSlash(filepath.Join(filepath.Base(g.assetsDir), name)), true
}

func writeExtraEntries(b *strings.Builder, entries []catalog.Resource) {
	if len(entries) == 0 {
		return
	}
	for _, res := range entries {
		fmt.Fprintf(b, "- **[%s](%s)**", res.DisplayName, res.PrimaryLink)
		if sub := strings.TrimSpace(res.SubCategory); sub != "" {
			fmt.Fprintf(b, " `%s`", sub)
		}
		if desc := strings.TrimSpace(res.Description); desc != "" {
			fmt.Fprintf(b, "  \n  %s", desc)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
)

// ClassicGenerator renders the full catalog in a compact per-category
// layout: no table of contents, no sub-category groupings, no visual
// embellishment, one dense line per resource.
type ClassicGenerator struct {
	base
}

// NewClassic constructs the classic-style generator.
func NewClassic(datasetPath, templatesDir, assetsDir, outputRoot string) *ClassicGenerator {
	return &ClassicGenerator{
		base: newBase(StyleClassic, "README-classic.md", datasetPath, templatesDir, assetsDir, outputRoot),
	}
}

func (g *ClassicGenerator) Generate(outputPath string) (int, []string, error) {
	start := time.Now()
	table, snap, err := g.loadInputs()
	if err != nil {
		return g.fail(err)
	}

	sections := groupSections(table.Active(), snap)
	count := countSections(sections)

	data := g.baseData(count)
	data["BODY"] = classicBody(sections)

	content, err := g.renderDocument("readme-classic", data)
	if err != nil {
		return g.fail(err)
	}
	if err := g.finish(outputPath, content, count, start); err != nil {
		return 0, nil, err
	}
	return count, nil, nil
}

func classicBody(sections []section) string {
	var b strings.Builder
	for i := range sections {
		sec := &sections[i]
		fmt.Fprintf(&b, "## %s\n\n", sec.Category.Name)
		// Dense layout: sub-category groupings are flattened away.
		entries := append([]catalog.Resource(nil), sec.Entries...)
		for _, sub := range sec.Subsections {
			entries = append(entries, sub.Entries...)
		}
		sortByName(entries)
		for _, res := range entries {
			fmt.Fprintf(&b, "- [%s](%s)", res.DisplayName, res.PrimaryLink)
			if desc := strings.TrimSpace(res.Description); desc != "" {
				fmt.Fprintf(&b, ": %s", desc)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

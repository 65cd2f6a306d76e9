package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture bundles the four paths every generator takes.
type fixture struct {
	dataset    string
	templates  string
	assets     string
	outputRoot string
}

var fixtureTemplates = map[string]string{
	"header": "# {{TITLE}}\n\nA curated catalog.\n\n**{{RESOURCE_COUNT}}** resources · generated {{GENERATION_DATE}}\n",
	"style-selector": "### Pick Your Style\n\nAlternate renderings:\n\n{{STYLE_LINKS}}\n",
	"footer":         "## Contributing\n\nRecommend a new resource by opening an issue.\n",
	"readme-awesome": "{{HEADER}}\n\n{{STYLE_SELECTOR}}\n\n## Contents\n\n{{TOC}}\n\n{{BODY}}\n\n{{FOOTER}}\n",
	"readme-classic": "{{HEADER}}\n\n{{STYLE_SELECTOR}}\n\n{{BODY}}\n\n{{FOOTER}}\n",
	"readme-extra":   "{{HEADER}}\n\n{{STYLE_SELECTOR}}\n\n{{BODY}}\n\n{{FOOTER}}\n",
	"readme-flat":    "{{HEADER}}\n\n## {{SECTION_TITLE}}\n\n{{BODY}}\n\n{{FOOTER}}\n",
}

const fixtureTaxonomy = `
categories:
  - name: Workflows
    slug: workflows
    order: 1
    icon: "🧠"
    description: Guides and systems.
  - name: Tooling
    slug: tooling
    order: 2
  - name: Hooks
    slug: hooks
    order: 3
  - name: Slash-Commands
    slug: slash-commands
    order: 4
exempt:
  - Output Styles
`

// newFixture lays out a complete template set, taxonomy, asset dir, and a
// dataset built from rows (CSV lines without the header).
func newFixture(t *testing.T, rows []string) fixture {
	t.Helper()
	root := t.TempDir()

	templatesDir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(templatesDir, 0o750))
	for name, content := range fixtureTemplates {
		require.NoError(t, os.WriteFile(
			filepath.Join(templatesDir, name+".template.md"), []byte(content), 0o644))
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, TaxonomyFileName), []byte(fixtureTaxonomy), 0o644))

	assetsDir := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(assetsDir, 0o750))
	for _, slug := range []string{"workflows", "tooling", "hooks", "slash-commands"} {
		require.NoError(t, os.WriteFile(
			filepath.Join(assetsDir, "badge-"+slug+".svg"), []byte("<svg/>"), 0o644))
	}

	datasetPath := filepath.Join(root, "resources.csv")
	header := "ID,Display Name,Category,Sub-Category,Primary Link,Active,Description"
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(datasetPath, []byte(content), 0o644))

	outputRoot := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(outputRoot, 0o750))

	return fixture{dataset: datasetPath, templates: templatesDir, assets: assetsDir, outputRoot: outputRoot}
}

// twentyRows returns 20 active resources: 5 each in Workflows, Tooling,
// Hooks, and Slash-Commands, plus 2 inactive rows that must never render.
func twentyRows() []string {
	categories := []string{"Workflows", "Tooling", "Hooks", "Slash-Commands"}
	var rows []string
	n := 0
	for _, cat := range categories {
		for i := 0; i < 5; i++ {
			n++
			rows = append(rows, fmt.Sprintf(
				`res-%03d,Resource %02d,%s,,https://example.com/r%d,TRUE,Entry number %d`,
				n, n, cat, n, n))
		}
	}
	rows = append(rows,
		`res-900,Ghost One,Tooling,,https://example.com/g1,FALSE,inactive`,
		`res-901,Ghost Two,Hooks,,https://example.com/g2,FALSE,inactive`,
	)
	return rows
}

func removeTemplate(templatesDir, name string) error {
	return os.Remove(filepath.Join(templatesDir, name+".template.md"))
}

func (f fixture) readOutput(t *testing.T, rel string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(f.outputRoot, rel))
	require.NoError(t, err)
	return string(raw)
}

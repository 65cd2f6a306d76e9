// Package generator implements the multi-style rendering engine: one
// generator per document style, a registry mapping style identifiers to
// constructors, and the root builder that produces the canonical top-level
// document. Every primary style renders the same active resource set; only
// layout, grouping, and presentation differ.
package generator

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
	"github.com/stuagano/awesome-claude-code/internal/metrics"
	"github.com/stuagano/awesome-claude-code/internal/render"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

// Title is the recognizable catalog title embedded in every rendered style.
const Title = "Awesome Claude Code"

// TaxonomyFileName is the taxonomy definition expected inside the template
// directory.
const TaxonomyFileName = "categories.yaml"

// Generator is the contract shared by all styles. Generate loads the
// active records, resolves categories, renders through the template set,
// and writes the result under the output root. It returns the number of
// active resources included in the rendered body plus any warnings.
type Generator interface {
	StyleID() string
	DefaultOutputPath() string
	SetRecorder(metrics.Recorder)
	Generate(outputPath string) (int, []string, error)
}

// base carries the construction parameters every style shares.
type base struct {
	styleID     string
	defaultPath string
	datasetPath string
	templates   *render.Set
	assetsDir   string
	outputRoot  string
	manager     *taxonomy.Manager
	recorder    metrics.Recorder
}

func newBase(styleID, defaultPath, datasetPath, templatesDir, assetsDir, outputRoot string) base {
	return base{
		styleID:     styleID,
		defaultPath: defaultPath,
		datasetPath: datasetPath,
		templates:   render.NewSet(templatesDir),
		assetsDir:   assetsDir,
		outputRoot:  outputRoot,
		manager:     taxonomy.NewManager(filepath.Join(templatesDir, TaxonomyFileName)),
		recorder:    metrics.NoopRecorder{},
	}
}

func (b *base) StyleID() string           { return b.styleID }
func (b *base) DefaultOutputPath() string { return b.defaultPath }

// SetRecorder swaps the metrics recorder (NoopRecorder by default).
func (b *base) SetRecorder(r metrics.Recorder) {
	if r != nil {
		b.recorder = r
	}
}

// loadInputs loads the dataset and resolves an immutable taxonomy snapshot
// for this run. Generators never share mutable taxonomy state; concurrent
// runs each hold their own snapshot reference.
func (b *base) loadInputs() (*catalog.Table, *taxonomy.Snapshot, error) {
	table, err := catalog.Load(b.datasetPath)
	if err != nil {
		return nil, nil, err
	}
	snap, err := b.manager.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	return table, snap, nil
}

// resolveOutputPath applies the style default when no explicit relative
// path was requested.
func (b *base) resolveOutputPath(outputPath string) string {
	if outputPath == "" {
		return b.defaultPath
	}
	return outputPath
}

// baseData returns the data tokens every style resolves in pass two.
func (b *base) baseData(count int) map[string]string {
	return map[string]string{
		"TITLE":           Title,
		"RESOURCE_COUNT":  fmt.Sprintf("%d", count),
		"GENERATION_DATE": time.Now().UTC().Format("2006-01-02"),
		"STYLE_LINKS":     styleLinks(b.styleID),
	}
}

// renderDocument runs the two-pass render for the named style template:
// fragment includes first, then data tokens, with a guaranteed zero
// unresolved placeholders in the result.
func (b *base) renderDocument(templateName string, data map[string]string) (string, error) {
	tpl, err := b.templates.Fragment(templateName)
	if err != nil {
		return "", err
	}
	includes := make(map[string]string, 3)
	for token, fragment := range map[string]string{
		"HEADER":         "header",
		"STYLE_SELECTOR": "style-selector",
		"FOOTER":         "footer",
	} {
		if !strings.Contains(tpl, "{{"+token+"}}") {
			continue
		}
		frag, err := b.templates.Fragment(fragment)
		if err != nil {
			return "", err
		}
		includes[token] = frag
	}
	return render.Render(tpl, includes, data)
}

// finish writes the rendered document and records the run.
func (b *base) finish(outputPath, content string, count int, start time.Time) error {
	rel := b.resolveOutputPath(outputPath)
	if _, err := render.WriteDocument(b.outputRoot, rel, content); err != nil {
		b.recorder.IncGenerationError(b.styleID)
		return err
	}
	b.recorder.ObserveGeneration(b.styleID, count, time.Since(start))
	return nil
}

func (b *base) fail(err error) (int, []string, error) {
	b.recorder.IncGenerationError(b.styleID)
	return 0, nil, err
}

// section is one category's worth of active resources, already ordered.
type section struct {
	Category    taxonomy.Category
	Entries     []catalog.Resource
	Subsections []subsection
}

type subsection struct {
	Name    string
	Entries []catalog.Resource
}

// count returns the number of resources in the section including
// subsections.
func (s *section) count() int {
	n := len(s.Entries)
	for _, sub := range s.Subsections {
		n += len(sub.Entries)
	}
	return n
}

func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

func sortByName(entries []catalog.Resource) {
	coll := newCollator()
	sort.SliceStable(entries, func(i, j int) bool {
		if cmp := coll.CompareString(entries[i].DisplayName, entries[j].DisplayName); cmp != 0 {
			return cmp < 0
		}
		return entries[i].ID < entries[j].ID
	})
}

// groupSections groups active resources by category in taxonomy display
// order. Categories missing from the taxonomy (the declared exempt set, or
// anything the caller chose not to validate) render after defined ones in
// alphabetical order, so primary styles always cover the whole active
// catalog. Empty categories produce no section.
func groupSections(active []catalog.Resource, snap *taxonomy.Snapshot) []section {
	byCategory := make(map[string][]catalog.Resource)
	for _, res := range active {
		byCategory[res.Category] = append(byCategory[res.Category], res)
	}

	var sections []section
	for _, cat := range snap.Categories() {
		entries, ok := byCategory[cat.Name]
		if !ok {
			continue
		}
		delete(byCategory, cat.Name)
		sections = append(sections, newSection(cat, entries))
	}

	var leftover []string
	for name := range byCategory {
		leftover = append(leftover, name)
	}
	sort.Strings(leftover)
	for _, name := range leftover {
		cat := taxonomy.Category{Name: name, Slug: taxonomy.Slugify(name)}
		sections = append(sections, newSection(cat, byCategory[name]))
	}
	return sections
}

func newSection(cat taxonomy.Category, entries []catalog.Resource) section {
	sec := section{Category: cat}
	bySub := make(map[string][]catalog.Resource)
	for _, res := range entries {
		sub := strings.TrimSpace(res.SubCategory)
		if sub == "" {
			sec.Entries = append(sec.Entries, res)
			continue
		}
		bySub[sub] = append(bySub[sub], res)
	}
	sortByName(sec.Entries)

	var subNames []string
	for name := range bySub {
		subNames = append(subNames, name)
	}
	sort.Strings(subNames)
	for _, name := range subNames {
		subEntries := bySub[name]
		sortByName(subEntries)
		sec.Subsections = append(sec.Subsections, subsection{Name: name, Entries: subEntries})
	}
	return sec
}

func countSections(sections []section) int {
	total := 0
	for i := range sections {
		total += sections[i].count()
	}
	return total
}

// anchorFor derives the GitHub-style anchor for a heading.
func anchorFor(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(heading) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		case r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}

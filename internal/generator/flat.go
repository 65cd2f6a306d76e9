package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

// SlugAll is the sentinel category slug selecting every active resource.
const SlugAll = "all"

// Flat sort modes.
const (
	SortAlphabetical        = "az"
	SortReverseAlphabetical = "za"
	SortByCategory          = "category"
)

// FlatGenerator is the parameterized style: a single flat section (no
// per-category grouping) containing the resources matching a category slug
// filter, ordered per the requested sort mode.
type FlatGenerator struct {
	base
	categorySlug string
	sortType     string
}

// NewFlat constructs a flat-list generator for the given category slug
// (or SlugAll) and sort mode.
func NewFlat(datasetPath, templatesDir, assetsDir, outputRoot, categorySlug, sortType string) *FlatGenerator {
	defaultPath := "README-flat.md"
	if categorySlug != "" && categorySlug != SlugAll {
		defaultPath = fmt.Sprintf("README-flat-%s.md", categorySlug)
	}
	return &FlatGenerator{
		base:         newBase(StyleFlat, defaultPath, datasetPath, templatesDir, assetsDir, outputRoot),
		categorySlug: categorySlug,
		sortType:     sortType,
	}
}

func (g *FlatGenerator) Generate(outputPath string) (int, []string, error) {
	start := time.Now()
	if err := g.validateParams(); err != nil {
		return g.fail(err)
	}
	table, snap, err := g.loadInputs()
	if err != nil {
		return g.fail(err)
	}

	entries := g.filter(table.Active(), snap)
	g.order(entries, snap)
	count := len(entries)

	data := g.baseData(count)
	data["SECTION_TITLE"] = g.sectionTitle(snap)
	data["BODY"] = flatBody(entries)

	content, err := g.renderDocument("readme-flat", data)
	if err != nil {
		return g.fail(err)
	}
	if err := g.finish(outputPath, content, count, start); err != nil {
		return 0, nil, err
	}
	return count, nil, nil
}

func (g *FlatGenerator) validateParams() error {
	switch g.sortType {
	case SortAlphabetical, SortReverseAlphabetical, SortByCategory:
	default:
		return pkgerrors.ConfigError(fmt.Sprintf("unknown sort type %q", g.sortType))
	}
	if g.categorySlug == "" {
		return pkgerrors.ConfigError("category slug is required (use \"all\" for the full catalog)")
	}
	return nil
}

// filter keeps the resources whose category resolves to the requested
// slug. Categories missing from the taxonomy match via their derived slug
// so exempt legacy categories stay addressable.
func (g *FlatGenerator) filter(active []catalog.Resource, snap *taxonomy.Snapshot) []catalog.Resource {
	if g.categorySlug == SlugAll {
		return active
	}
	var filtered []catalog.Resource
	for _, res := range active {
		if categorySlug(res.Category, snap) == g.categorySlug {
			filtered = append(filtered, res)
		}
	}
	return filtered
}

func (g *FlatGenerator) order(entries []catalog.Resource, snap *taxonomy.Snapshot) {
	switch g.sortType {
	case SortAlphabetical:
		sortByName(entries)
	case SortReverseAlphabetical:
		sortByName(entries)
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	case SortByCategory:
		rank := make(map[string]int, snap.Len())
		for i, cat := range snap.Categories() {
			rank[cat.Name] = i
		}
		unknown := snap.Len()
		coll := newCollator()
		sort.SliceStable(entries, func(i, j int) bool {
			ri, ok := rank[entries[i].Category]
			if !ok {
				ri = unknown
			}
			rj, ok := rank[entries[j].Category]
			if !ok {
				rj = unknown
			}
			if ri != rj {
				return ri < rj
			}
			if cmp := coll.CompareString(entries[i].DisplayName, entries[j].DisplayName); cmp != 0 {
				return cmp < 0
			}
			return entries[i].ID < entries[j].ID
		})
	}
}

func (g *FlatGenerator) sectionTitle(snap *taxonomy.Snapshot) string {
	if g.categorySlug == SlugAll {
		return "All Resources"
	}
	if cat, ok := snap.BySlug(g.categorySlug); ok {
		return cat.Name
	}
	return g.categorySlug
}

func categorySlug(name string, snap *taxonomy.Snapshot) string {
	if cat, ok := snap.ByName(name); ok {
		return cat.Slug
	}
	return taxonomy.Slugify(name)
}

func flatBody(entries []catalog.Resource) string {
	var b strings.Builder
	for _, res := range entries {
		fmt.Fprintf(&b, "- [%s](%s)", res.DisplayName, res.PrimaryLink)
		if desc := strings.TrimSpace(res.Description); desc != "" {
			fmt.Fprintf(&b, " - %s", desc)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

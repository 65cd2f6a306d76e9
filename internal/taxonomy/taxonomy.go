// Package taxonomy loads the ordered category definitions resources are
// grouped under. A Snapshot is an immutable view of the taxonomy file,
// passed by value into each generator run; the Manager adds process-wide
// caching with an explicit reset for tools that edit the taxonomy within
// one process lifetime.
package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// Category is one taxonomy node.
type Category struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Order       int    `yaml:"order"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type taxonomyFile struct {
	Categories []Category `yaml:"categories"`
	Exempt     []string   `yaml:"exempt"`
}

// Snapshot is an immutable, validated view of one taxonomy file. All lookup
// methods are safe for concurrent use.
type Snapshot struct {
	categories []Category
	byName     map[string]Category
	bySlug     map[string]Category
	exempt     map[string]struct{}
}

// LoadSnapshot reads and validates the taxonomy file at path.
func LoadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CategoryTaxonomy, pkgerrors.SeverityError, "read taxonomy")
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CategoryTaxonomy, pkgerrors.SeverityError, "parse taxonomy")
	}
	if len(file.Categories) == 0 {
		return nil, pkgerrors.TaxonomyGapError("taxonomy defines no categories")
	}

	snap := &Snapshot{
		byName: make(map[string]Category, len(file.Categories)),
		bySlug: make(map[string]Category, len(file.Categories)),
		exempt: make(map[string]struct{}, len(file.Exempt)),
	}
	for _, cat := range file.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, pkgerrors.TaxonomyGapError("taxonomy category with empty name")
		}
		if cat.Slug == "" {
			cat.Slug = Slugify(cat.Name)
		}
		if _, dup := snap.byName[cat.Name]; dup {
			return nil, pkgerrors.TaxonomyGapError(fmt.Sprintf("duplicate category name %q", cat.Name))
		}
		if _, dup := snap.bySlug[cat.Slug]; dup {
			return nil, pkgerrors.TaxonomyGapError(fmt.Sprintf("duplicate category slug %q", cat.Slug))
		}
		snap.byName[cat.Name] = cat
		snap.bySlug[cat.Slug] = cat
		snap.categories = append(snap.categories, cat)
	}
	for _, name := range file.Exempt {
		snap.exempt[name] = struct{}{}
	}

	// Display order: explicit order field, ties broken by name.
	sort.SliceStable(snap.categories, func(i, j int) bool {
		if snap.categories[i].Order != snap.categories[j].Order {
			return snap.categories[i].Order < snap.categories[j].Order
		}
		return snap.categories[i].Name < snap.categories[j].Name
	})
	return snap, nil
}

// Categories returns the taxonomy nodes in display order.
func (s *Snapshot) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// ByName looks up a category by its dataset-facing name.
func (s *Snapshot) ByName(name string) (Category, bool) {
	cat, ok := s.byName[name]
	return cat, ok
}

// BySlug looks up a category by its URL/anchor-safe slug.
func (s *Snapshot) BySlug(slug string) (Category, bool) {
	cat, ok := s.bySlug[slug]
	return cat, ok
}

// IsExempt reports whether name is on the declared known-undefined list:
// a legacy category accepted without a taxonomy definition.
func (s *Snapshot) IsExempt(name string) bool {
	_, ok := s.exempt[name]
	return ok
}

// Len returns the number of defined categories.
func (s *Snapshot) Len() int {
	return len(s.categories)
}

// Slugify derives an anchor-safe slug from a category name: lowercase,
// runs of non-alphanumerics collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

package catalog

import (
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

// CheckActiveFields verifies that every active record carries a non-empty
// display name, category, and primary link. It returns one message per
// offending row.
func CheckActiveFields(t *Table) []string {
	var problems []string
	for _, row := range t.Active() {
		label := row.DisplayName
		if strings.TrimSpace(label) == "" {
			label = row.ID
		}
		if strings.TrimSpace(row.DisplayName) == "" {
			problems = append(problems, fmt.Sprintf("active resource %s has no display name", label))
		}
		if strings.TrimSpace(row.Category) == "" {
			problems = append(problems, fmt.Sprintf("active resource %s has no category", label))
		}
		if strings.TrimSpace(row.PrimaryLink) == "" {
			problems = append(problems, fmt.Sprintf("active resource %s has no primary link", label))
		}
	}
	return problems
}

// CheckUniqueIDs verifies that IDs are unique over the whole dataset,
// active and inactive rows alike.
func CheckUniqueIDs(t *Table) []string {
	seen := make(map[string]int)
	for _, row := range t.Rows {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			continue
		}
		seen[id]++
	}
	var dupes []string
	for id, n := range seen {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)
	var problems []string
	for _, id := range dupes {
		problems = append(problems, fmt.Sprintf("duplicate resource ID %q", id))
	}
	return problems
}

// CheckCategoryCoverage verifies that every category named by an active
// resource is defined in the taxonomy. Categories on the taxonomy's exempt
// list are accepted legacy gaps; anything else undefined is an error.
func CheckCategoryCoverage(t *Table, snap *taxonomy.Snapshot) error {
	undefined := make(map[string]struct{})
	for _, row := range t.Active() {
		name := strings.TrimSpace(row.Category)
		if name == "" {
			continue
		}
		if _, ok := snap.ByName(name); ok {
			continue
		}
		if snap.IsExempt(name) {
			continue
		}
		undefined[name] = struct{}{}
	}
	if len(undefined) == 0 {
		return nil
	}
	names := make([]string, 0, len(undefined))
	for name := range undefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return pkgerrors.TaxonomyGapError(
		fmt.Sprintf("categories not defined in taxonomy: %s", strings.Join(names, ", ")))
}

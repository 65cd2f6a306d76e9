// Package catalog loads the resource dataset (a CSV table) into typed
// records and provides the dataset-level invariant checks the pipeline
// relies on: required columns, non-empty fields on active rows, and
// globally unique IDs.
package catalog

import "strings"

// Column names the dataset is required to carry. Any additional columns are
// preserved opaquely in Resource.Fields and by the sorter.
const (
	ColumnID          = "ID"
	ColumnDisplayName = "Display Name"
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub-Category"
	ColumnPrimaryLink = "Primary Link"
	ColumnActive      = "Active"
	ColumnDescription = "Description"
)

// RequiredColumns lists the columns every dataset must define.
var RequiredColumns = []string{
	ColumnID,
	ColumnDisplayName,
	ColumnCategory,
	ColumnSubCategory,
	ColumnPrimaryLink,
	ColumnActive,
	ColumnDescription,
}

// Resource is one catalog entry. The typed fields mirror the required
// columns; Fields carries every column of the row, including unknown ones.
type Resource struct {
	ID          string
	DisplayName string
	Category    string
	SubCategory string
	PrimaryLink string
	Description string
	Active      bool

	Fields map[string]string
}

// IsActiveValue reports whether a raw Active column value marks the row as
// active. The comparison is a case-insensitive exact match against "TRUE".
func IsActiveValue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "TRUE")
}

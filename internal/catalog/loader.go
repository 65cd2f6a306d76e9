package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// Table is one loaded dataset: the header in source order plus every row.
// Loading never mutates the backing file.
type Table struct {
	Columns []string
	Rows    []Resource
}

// Load parses the dataset file at path into a Table. It fails with a
// data-format error if the file cannot be parsed, if any row has the wrong
// column count, or if a required column is absent.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.WrapDataFormat(err, "open dataset")
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.WrapDataFormat(err, "parse dataset")
	}
	if len(records) == 0 {
		return nil, pkgerrors.DataFormatError("dataset has no header row")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.DataFormatError(
			fmt.Sprintf("dataset missing required columns: %s", strings.Join(missing, ", ")))
	}

	table := &Table{Columns: append([]string(nil), header...)}
	for _, record := range records[1:] {
		fields := make(map[string]string, len(header))
		for i, col := range header {
			fields[strings.TrimSpace(col)] = record[i]
		}
		table.Rows = append(table.Rows, Resource{
			ID:          fields[ColumnID],
			DisplayName: fields[ColumnDisplayName],
			Category:    fields[ColumnCategory],
			SubCategory: fields[ColumnSubCategory],
			PrimaryLink: fields[ColumnPrimaryLink],
			Description: fields[ColumnDescription],
			Active:      IsActiveValue(fields[ColumnActive]),
			Fields:      fields,
		})
	}
	return table, nil
}

// Active returns the subset of rows flagged for inclusion in generated
// documents, in source order.
func (t *Table) Active() []Resource {
	var active []Resource
	for _, row := range t.Rows {
		if row.Active {
			active = append(active, row)
		}
	}
	return active
}

// Package sorter rewrites the dataset file into its canonical ordering:
// taxonomy display order first, then display name (case-insensitive), then
// ID. The rewrite is atomic; a dataset that fails to parse is left
// untouched. Sorting is idempotent and preserves the row count and the
// column set.
package sorter

import (
	"bytes"
	"encoding/csv"
	"os"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

// Sort rewrites the dataset at path in place into canonical order. The
// whole operation aborts before writing anything if any row cannot be
// parsed. Categories missing from the taxonomy sort after defined ones,
// alphabetically, so the ordering stays deterministic for exempt legacy
// categories.
func Sort(path string, snap *taxonomy.Snapshot) error {
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.WrapDataFormat(err, "open dataset")
	}
	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	closeErr := f.Close()
	if err != nil {
		return pkgerrors.WrapDataFormat(err, "parse dataset")
	}
	if closeErr != nil {
		return pkgerrors.WrapDataFormat(closeErr, "read dataset")
	}
	if len(records) == 0 {
		return pkgerrors.DataFormatError("dataset has no header row")
	}

	header := records[0]
	categoryIdx := columnIndex(header, catalog.ColumnCategory)
	nameIdx := columnIndex(header, catalog.ColumnDisplayName)
	idIdx := columnIndex(header, catalog.ColumnID)
	if categoryIdx < 0 || nameIdx < 0 || idIdx < 0 {
		return pkgerrors.DataFormatError("dataset missing sort key columns")
	}

	rank := make(map[string]int, snap.Len())
	for i, cat := range snap.Categories() {
		rank[cat.Name] = i
	}
	unknownRank := snap.Len()

	coll := collate.New(language.English, collate.IgnoreCase)
	rows := records[1:]
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := rows[i][categoryIdx], rows[j][categoryIdx]
		ri, okI := rank[ci]
		if !okI {
			ri = unknownRank
		}
		rj, okJ := rank[cj]
		if !okJ {
			rj = unknownRank
		}
		if ri != rj {
			return ri < rj
		}
		// Undefined categories tie on rank; order them by name so the
		// result does not depend on input order.
		if !okI && !okJ && ci != cj {
			return ci < cj
		}
		if cmp := coll.CompareString(rows[i][nameIdx], rows[j][nameIdx]); cmp != 0 {
			return cmp < 0
		}
		return rows[i][idIdx] < rows[j][idIdx]
	})

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return pkgerrors.WrapDataFormat(err, "encode header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return pkgerrors.WrapDataFormat(err, "encode rows")
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return pkgerrors.WrapDataFormat(err, "encode dataset")
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return pkgerrors.FileWriteError(err, "replace dataset")
	}
	return nil
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

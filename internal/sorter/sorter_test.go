package sorter

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

const header = "ID,Display Name,Category,Sub-Category,Primary Link,Active,Description"

func testSnapshot(t *testing.T) *taxonomy.Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: Workflows
    slug: workflows
    order: 1
  - name: Tooling
    slug: tooling
    order: 2
  - name: Hooks
    slug: hooks
    order: 3
`), 0o644))
	snap, err := taxonomy.LoadSnapshot(path)
	require.NoError(t, err)
	return snap
}

func writeFile(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

// shuffledFixture builds a 50-row dataset in random order.
func shuffledFixture(t *testing.T, seed int64) string {
	t.Helper()
	categories := []string{"Workflows", "Tooling", "Hooks"}
	lines := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		cat := categories[i%len(categories)]
		lines = append(lines, fmt.Sprintf(
			`res-%03d,Resource %c%02d,%s,,https://example.com/%d,TRUE,"Entry, number %d"`,
			i, 'A'+rune(i%26), i, cat, i, i))
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
	return writeFile(t, append([]string{header}, lines...))
}

func TestSortPreservesRowsAndColumns(t *testing.T) {
	snap := testSnapshot(t)
	path := shuffledFixture(t, 1)

	before := readRows(t, path)
	require.NoError(t, Sort(path, snap))
	after := readRows(t, path)

	assert.Equal(t, len(before), len(after))
	assert.Equal(t, before[0], after[0])
}

func TestSortIsIdempotent(t *testing.T) {
	snap := testSnapshot(t)
	path := shuffledFixture(t, 2)

	require.NoError(t, Sort(path, snap))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Sort(path, snap))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "sorting twice must be byte-identical")
}

func TestSortIsOrderIndependent(t *testing.T) {
	snap := testSnapshot(t)
	pathA := shuffledFixture(t, 3)
	pathB := shuffledFixture(t, 4)

	require.NoError(t, Sort(pathA, snap))
	require.NoError(t, Sort(pathB, snap))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same rows must sort identically regardless of input order")
}

func TestSortCanonicalOrdering(t *testing.T) {
	snap := testSnapshot(t)
	path := writeFile(t, []string{
		header,
		`res-1,zeta,Hooks,,https://a,TRUE,x`,
		`res-2,Alpha,Tooling,,https://b,TRUE,x`,
		`res-3,beta,Tooling,,https://c,TRUE,x`,
		`res-4,Gamma,Workflows,,https://d,TRUE,x`,
		`res-5,Delta,Unlisted,,https://e,TRUE,x`,
	})

	require.NoError(t, Sort(path, snap))
	rows := readRows(t, path)

	var order []string
	for _, row := range rows[1:] {
		order = append(order, row[0])
	}
	// Workflows, then Tooling (Alpha before beta, case-insensitive), then
	// Hooks, then categories not in the taxonomy.
	assert.Equal(t, []string{"res-4", "res-2", "res-3", "res-1", "res-5"}, order)
}

func TestSortAbortsOnMalformedRow(t *testing.T) {
	snap := testSnapshot(t)
	path := writeFile(t, []string{
		header,
		`res-1,A,Tooling,,https://a,TRUE,x`,
		`res-2,"unterminated,Tooling,,https://b,TRUE,x`,
	})
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	err = Sort(path, snap)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryData))

	// The file must be byte-identical to what it was before the attempt.
	current, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, current)
}

func TestSortPreservesExtraColumns(t *testing.T) {
	snap := testSnapshot(t)
	path := writeFile(t, []string{
		header + ",License",
		`res-1,B,Tooling,,https://a,TRUE,x,MIT`,
		`res-2,A,Tooling,,https://b,TRUE,x,Apache-2.0`,
	})

	require.NoError(t, Sort(path, snap))
	rows := readRows(t, path)
	require.Len(t, rows[0], 8)
	assert.Equal(t, "License", rows[0][7])
	assert.Equal(t, "Apache-2.0", rows[1][7])
	assert.Equal(t, "MIT", rows[2][7])
}

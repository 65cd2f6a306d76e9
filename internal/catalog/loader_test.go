package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

const fixtureHeader = "ID,Display Name,Category,Sub-Category,Primary Link,Active,Description"

func writeDataset(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.csv")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesTypedFields(t *testing.T) {
	path := writeDataset(t,
		fixtureHeader,
		`res-001,Agent Deck,Tooling,CLI,https://example.com/deck,TRUE,A deck of agents`,
		`res-002,Old Thing,Tooling,,https://example.com/old,FALSE,Retired`,
	)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	first := table.Rows[0]
	assert.Equal(t, "res-001", first.ID)
	assert.Equal(t, "Agent Deck", first.DisplayName)
	assert.Equal(t, "Tooling", first.Category)
	assert.Equal(t, "CLI", first.SubCategory)
	assert.Equal(t, "https://example.com/deck", first.PrimaryLink)
	assert.True(t, first.Active)
	assert.False(t, table.Rows[1].Active)
}

func TestLoadActiveFilterIsCaseInsensitive(t *testing.T) {
	path := writeDataset(t,
		fixtureHeader,
		`res-001,A,Tooling,,https://a,true,x`,
		`res-002,B,Tooling,,https://b,True,x`,
		`res-003,C,Tooling,,https://c,TRUE,x`,
		`res-004,D,Tooling,,https://d,no,x`,
		`res-005,E,Tooling,,https://e,,x`,
	)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, table.Active(), 3)
}

func TestLoadPreservesUnknownColumns(t *testing.T) {
	path := writeDataset(t,
		fixtureHeader+",License,Stars",
		`res-001,A,Tooling,,https://a,TRUE,x,MIT,42`,
	)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Display Name", "Category", "Sub-Category",
		"Primary Link", "Active", "Description", "License", "Stars"}, table.Columns)
	assert.Equal(t, "MIT", table.Rows[0].Fields["License"])
	assert.Equal(t, "42", table.Rows[0].Fields["Stars"])
}

func TestLoadMissingRequiredColumns(t *testing.T) {
	path := writeDataset(t,
		"ID,Display Name,Active",
		`res-001,A,TRUE`,
	)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryData))
	assert.Contains(t, err.Error(), "Category")
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	path := writeDataset(t,
		fixtureHeader,
		`res-001,A,Tooling,,https://a,TRUE`, // one field short
	)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryData))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryData))
}

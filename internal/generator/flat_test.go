package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

func TestFlatAllRendersEveryActiveResource(t *testing.T) {
	f := newFixture(t, twentyRows())
	gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, SortAlphabetical)

	count, _, err := gen.Generate("")
	require.NoError(t, err)
	assert.Equal(t, 20, count)
	assert.Equal(t, "README-flat.md", gen.DefaultOutputPath())

	content := f.readOutput(t, "README-flat.md")
	assert.Contains(t, content, "## All Resources")
	// Flat layout: a single section, no per-category headings.
	assert.NotContains(t, content, "## Tooling")
}

func TestFlatCategoryFilterCounts(t *testing.T) {
	f := newFixture(t, twentyRows())

	all := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, SortAlphabetical)
	countAll, _, err := all.Generate("")
	require.NoError(t, err)

	filtered := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, "tooling", SortAlphabetical)
	countTooling, _, err := filtered.Generate("")
	require.NoError(t, err)

	assert.Equal(t, 20, countAll)
	assert.Equal(t, 5, countTooling)
	assert.Greater(t, countTooling, 0)
	assert.Less(t, countTooling, countAll)
	assert.Equal(t, "README-flat-tooling.md", filtered.DefaultOutputPath())

	content := f.readOutput(t, "README-flat-tooling.md")
	assert.Contains(t, content, "## Tooling")
}

func TestFlatSortModes(t *testing.T) {
	rows := []string{
		`res-1,Charlie,Tooling,,https://example.com/c,TRUE,x`,
		`res-2,alpha,Hooks,,https://example.com/a,TRUE,x`,
		`res-3,Bravo,Workflows,,https://example.com/b,TRUE,x`,
	}

	t.Run("az", func(t *testing.T) {
		f := newFixture(t, rows)
		gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, SortAlphabetical)
		_, _, err := gen.Generate("")
		require.NoError(t, err)
		content := f.readOutput(t, "README-flat.md")
		require.True(t, strings.Index(content, "alpha") < strings.Index(content, "Bravo"))
		require.True(t, strings.Index(content, "Bravo") < strings.Index(content, "Charlie"))
	})

	t.Run("za", func(t *testing.T) {
		f := newFixture(t, rows)
		gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, SortReverseAlphabetical)
		_, _, err := gen.Generate("")
		require.NoError(t, err)
		content := f.readOutput(t, "README-flat.md")
		require.True(t, strings.Index(content, "Charlie") < strings.Index(content, "Bravo"))
		require.True(t, strings.Index(content, "Bravo") < strings.Index(content, "alpha"))
	})

	t.Run("category", func(t *testing.T) {
		f := newFixture(t, rows)
		gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, SortByCategory)
		_, _, err := gen.Generate("")
		require.NoError(t, err)
		content := f.readOutput(t, "README-flat.md")
		// Taxonomy order: Workflows, Tooling, Hooks.
		require.True(t, strings.Index(content, "Bravo") < strings.Index(content, "Charlie"))
		require.True(t, strings.Index(content, "Charlie") < strings.Index(content, "alpha"))
	})
}

func TestFlatRejectsUnknownSortType(t *testing.T) {
	f := newFixture(t, twentyRows())
	gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, SlugAll, "by-vibes")
	_, _, err := gen.Generate("")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryConfig))
}

func TestFlatEmptySlugYieldsZeroCount(t *testing.T) {
	f := newFixture(t, twentyRows())
	gen := NewFlat(f.dataset, f.templates, f.assets, f.outputRoot, "claude-md-files", SortAlphabetical)
	count, _, err := gen.Generate("")
	require.NoError(t, err)
	assert.Zero(t, count, "no fixture rows carry this category")
}

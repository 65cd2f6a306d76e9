package generator

import (
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// Style identifiers.
const (
	StyleAwesome = "awesome"
	StyleClassic = "classic"
	StyleExtra   = "extra"
	StyleFlat    = "flat"
)

// Constructor builds a generator from the four pipeline paths. The flat
// style registers with its parameter defaults (full catalog, alphabetical);
// parameterized instances are built through NewFlat directly.
type Constructor func(datasetPath, templatesDir, assetsDir, outputRoot string) Generator

// styleConstructors is the explicit style registry. No reflection: every
// style is a tagged entry here, and VerifyRegistry checks the primary set
// against it at startup.
var styleConstructors = map[string]Constructor{
	StyleAwesome: func(dataset, templates, assets, out string) Generator {
		return NewAwesome(dataset, templates, assets, out)
	},
	StyleClassic: func(dataset, templates, assets, out string) Generator {
		return NewClassic(dataset, templates, assets, out)
	},
	StyleExtra: func(dataset, templates, assets, out string) Generator {
		return NewExtra(dataset, templates, assets, out)
	},
	StyleFlat: func(dataset, templates, assets, out string) Generator {
		return NewFlat(dataset, templates, assets, out, SlugAll, SortAlphabetical)
	},
}

// PrimaryStyleIDs are the styles that render the whole active catalog, as
// opposed to parameterized filtered views. Given the same dataset and
// taxonomy they must all report the same resource count.
var PrimaryStyleIDs = []string{StyleAwesome, StyleClassic, StyleExtra}

// styleLabels supply the human names used in the style selector block.
var styleLabels = map[string]string{
	StyleAwesome: "Awesome style",
	StyleClassic: "Classic style",
	StyleExtra:   "Extra style",
}

// StyleIDs returns every registered style identifier, sorted.
func StyleIDs() []string {
	ids := make([]string, 0, len(styleConstructors))
	for id := range styleConstructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsPrimary reports whether styleID renders the full active catalog.
func IsPrimary(styleID string) bool {
	for _, id := range PrimaryStyleIDs {
		if id == styleID {
			return true
		}
	}
	return false
}

// New instantiates the registered generator for styleID.
func New(styleID, datasetPath, templatesDir, assetsDir, outputRoot string) (Generator, error) {
	ctor, ok := styleConstructors[styleID]
	if !ok {
		return nil, pkgerrors.ConfigError(
			fmt.Sprintf("unknown style %q (available: %s)", styleID, strings.Join(StyleIDs(), ", ")))
	}
	return ctor(datasetPath, templatesDir, assetsDir, outputRoot), nil
}

// BuildRootGenerator looks up the style chosen to produce the canonical
// top-level document and instantiates its generator with the given paths.
// The returned value is exactly the registry entry's type, no wrapping.
func BuildRootGenerator(styleID, datasetPath, templatesDir, assetsDir, outputRoot string) (Generator, error) {
	if !IsPrimary(styleID) {
		return nil, pkgerrors.ConfigError(
			fmt.Sprintf("root style %q is not a primary style (available: %s)",
				styleID, strings.Join(PrimaryStyleIDs, ", ")))
	}
	return New(styleID, datasetPath, templatesDir, assetsDir, outputRoot)
}

// VerifyRegistry fails fast if a declared primary style has no registered
// constructor. The CLI calls it at startup.
func VerifyRegistry() error {
	for _, id := range PrimaryStyleIDs {
		if _, ok := styleConstructors[id]; !ok {
			return pkgerrors.ConfigError(fmt.Sprintf("primary style %q has no registered generator", id))
		}
		if _, ok := styleLabels[id]; !ok {
			return pkgerrors.ConfigError(fmt.Sprintf("primary style %q has no selector label", id))
		}
	}
	return nil
}

// defaultOutputFor returns the default filename a primary style renders to,
// used when building selector links.
func defaultOutputFor(styleID string) string {
	switch styleID {
	case StyleAwesome:
		return "README.md"
	case StyleClassic:
		return "README-classic.md"
	case StyleExtra:
		return "README-extra.md"
	default:
		return ""
	}
}

// styleLinks renders the selector rows referencing the alternate primary
// renderings, excluding the style being generated.
func styleLinks(currentStyle string) string {
	var b strings.Builder
	for _, id := range PrimaryStyleIDs {
		if id == currentStyle {
			continue
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", styleLabels[id], defaultOutputFor(id))
	}
	return strings.TrimRight(b.String(), "\n")
}

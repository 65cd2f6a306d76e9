// Package render implements the template side of the pipeline: loading
// document fragments from a template directory and substituting their
// placeholder tokens with rendered content.
//
// Tokens are delimiter-wrapped uppercase identifiers ({{BODY}}, {{TOC}});
// rendering is an explicit two-pass process. The first pass expands
// fragment includes, the second substitutes data tokens, and a final scan
// guarantees zero placeholders remain in the output.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// TemplateExt is the suffix every fragment file in the template directory
// carries, e.g. header.template.md.
const TemplateExt = ".template.md"

// Set resolves named fragments from one template directory.
type Set struct {
	dir string
}

// NewSet creates a template set over dir. Fragments are read on demand so
// edits during the same process lifetime are picked up by the next run.
func NewSet(dir string) *Set {
	return &Set{dir: dir}
}

// Dir returns the template directory backing this set.
func (s *Set) Dir() string {
	return s.dir
}

// Fragment reads the named fragment ("header" resolves header.template.md).
// A missing fragment is a template error, fatal to the generation call that
// needed it.
func (s *Set) Fragment(name string) (string, error) {
	path := filepath.Join(s.dir, name+TemplateExt)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", pkgerrors.TemplateMissingError(fmt.Sprintf("template %q not found in %s", name, s.dir))
		}
		return "", pkgerrors.Wrap(err, pkgerrors.CategoryTemplate, pkgerrors.SeverityError, "read template")
	}
	return string(raw), nil
}

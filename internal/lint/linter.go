package lint

import (
	"log/slog"
	"os"
	"path/filepath"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// Linter runs a set of rules over rendered documents.
type Linter struct {
	rules  []Rule
	logger *slog.Logger
}

// New creates a Linter with the default rule set.
func New(logger *slog.Logger) *Linter {
	return &Linter{
		rules: []Rule{
			&UnresolvedTokenRule{},
			&EmptySectionRule{},
			&StructureRule{MinHeadings: 3, MinLinks: 20},
		},
		logger: logger,
	}
}

// NewWithRules creates a Linter with an explicit rule set.
func NewWithRules(logger *slog.Logger, rules ...Rule) *Linter {
	return &Linter{rules: rules, logger: logger}
}

// LintContent applies all rules to a single in-memory document.
func (l *Linter) LintContent(document string, content []byte) *Result {
	result := &Result{DocumentsTotal: 1}
	for _, rule := range l.rules {
		issues := rule.Check(document, content)
		result.Issues = append(result.Issues, issues...)
		for _, issue := range issues {
			l.logger.Debug("lint issue",
				"document", issue.Document,
				"rule", issue.Rule,
				"severity", issue.Severity.String(),
				"message", issue.Message)
		}
	}
	return result
}

// LintFiles reads and lints each path, merging issues into one result.
func (l *Linter) LintFiles(paths ...string) (*Result, error) {
	merged := &Result{}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, pkgerrors.CategoryData, pkgerrors.SeverityError, "read document for lint")
		}
		r := l.LintContent(filepath.Base(path), content)
		merged.Issues = append(merged.Issues, r.Issues...)
		merged.DocumentsTotal++
	}
	return merged, nil
}

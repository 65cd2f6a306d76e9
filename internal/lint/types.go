// Package lint validates rendered catalog documents: leftover template
// tokens, empty section runs, and minimum structural content. It is the
// last line of defense after a generator claims success.
package lint

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that should be fixed but don't block a release.
	SeverityWarning
	// SeverityError indicates issues that make the document unpublishable.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single problem found in a rendered document.
type Issue struct {
	Document string   // Name or path of the document
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g. "unresolved-tokens")
	Message  string   // Brief description of the issue
	Line     int      // Line number (0 if document-level)
}

// Result contains all issues found during linting.
type Result struct {
	Issues         []Issue
	DocumentsTotal int
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// Rule defines one validation applied to a rendered document.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check validates a document body and returns any issues found.
	Check(document string, content []byte) []Issue
}

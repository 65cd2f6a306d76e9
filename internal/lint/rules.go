package lint

import (
	"fmt"
	"strings"

	"github.com/stuagano/awesome-claude-code/internal/markdown"
	"github.com/stuagano/awesome-claude-code/internal/render"
)

// UnresolvedTokenRule flags template placeholders that survived rendering.
type UnresolvedTokenRule struct{}

func (r *UnresolvedTokenRule) Name() string { return "unresolved-tokens" }

func (r *UnresolvedTokenRule) Check(document string, content []byte) []Issue {
	tokens := render.UnresolvedTokens(string(content))
	if len(tokens) == 0 {
		return nil
	}
	return []Issue{{
		Document: document,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("unresolved template tokens: %s", strings.Join(tokens, ", ")),
	}}
}

// footerMarkers terminate the resource body. The contribution and license
// sections legitimately stack headings, so the empty-section scan stops
// at the first of these.
var footerMarkers = []string{
	"## Contributing",
	"Recommend a new resource",
}

// EmptySectionRule flags runs of three or more consecutive section
// headings with no content between them inside the resource body.
type EmptySectionRule struct{}

func (r *EmptySectionRule) Name() string { return "empty-sections" }

func (r *EmptySectionRule) Check(document string, content []byte) []Issue {
	lines := strings.Split(string(content), "\n")

	bodyStart := -1
	bodyEnd := len(lines)
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if bodyStart == -1 && strings.HasPrefix(stripped, "## ") {
			bodyStart = i
		}
		if isFooterMarker(stripped) {
			bodyEnd = i
			break
		}
	}
	if bodyStart == -1 {
		return nil
	}

	consecutive := 0
	for i := bodyStart; i < bodyEnd; i++ {
		stripped := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(stripped, "## ") || strings.HasPrefix(stripped, "### "):
			consecutive++
			if consecutive > 2 {
				return []Issue{{
					Document: document,
					Severity: SeverityError,
					Rule:     r.Name(),
					Message:  fmt.Sprintf("3+ consecutive headings with no content near %q", stripped),
					Line:     i + 1,
				}}
			}
		case stripped != "":
			consecutive = 0
		}
	}
	return nil
}

func isFooterMarker(line string) bool {
	for _, marker := range footerMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// StructureRule enforces a minimum amount of rendered structure: section
// headings and external links. It guards against a generator quietly
// emitting a near-empty document for a realistic dataset.
type StructureRule struct {
	MinHeadings int
	MinLinks    int
}

func (r *StructureRule) Name() string { return "minimum-structure" }

func (r *StructureRule) Check(document string, content []byte) []Issue {
	var issues []Issue

	headings := 0
	for _, h := range markdown.ExtractHeadings(content) {
		if h.Level >= 2 {
			headings++
		}
	}
	if headings < r.MinHeadings {
		issues = append(issues, Issue{
			Document: document,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("expected at least %d section headings, found %d", r.MinHeadings, headings),
		})
	}

	external := 0
	for _, link := range markdown.ExtractLinks(content) {
		if strings.HasPrefix(link.Destination, "http://") || strings.HasPrefix(link.Destination, "https://") {
			external++
		}
	}
	if external < r.MinLinks {
		issues = append(issues, Issue{
			Document: document,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("expected at least %d resource links, found %d", r.MinLinks, external),
		})
	}
	return issues
}

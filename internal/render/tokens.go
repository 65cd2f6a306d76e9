package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// tokenPattern matches delimiter-wrapped uppercase identifiers.
var tokenPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// Substitute replaces every token that has a value in values. Tokens
// without a value are left in place for a later pass.
func Substitute(text string, values map[string]string) string {
	if len(values) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.Trim(match, "{}")
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// UnresolvedTokens returns the distinct placeholder tokens remaining in
// text, sorted for stable error messages.
func UnresolvedTokens(text string) []string {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var tokens []string
	for _, match := range matches {
		if _, dup := seen[match[1]]; dup {
			continue
		}
		seen[match[1]] = struct{}{}
		tokens = append(tokens, match[1])
	}
	sort.Strings(tokens)
	return tokens
}

// Render expands the template in two passes: fragment includes first (an
// included fragment may itself contain data tokens), then data values. Any
// token still unresolved after both passes is an error.
func Render(template string, includes, data map[string]string) (string, error) {
	out := Substitute(template, includes)
	out = Substitute(out, data)
	if leftover := UnresolvedTokens(out); len(leftover) > 0 {
		return "", unresolvedError(leftover)
	}
	return out, nil
}

func unresolvedError(tokens []string) error {
	return pkgerrors.UnresolvedTokenError(
		fmt.Sprintf("unresolved template tokens: %s", strings.Join(tokens, ", ")))
}

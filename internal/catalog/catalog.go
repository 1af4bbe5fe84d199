package catalog

import (
	"regexp"
	"strings"

	"github.com/sigscan/sigscan/internal/types"
)

// Kind is the closed set of rule families in the catalog.
type Kind string

const (
	KindSecret     Kind = "secret"
	KindInjection  Kind = "injection"
	KindXSS        Kind = "xss"
	KindCrypto     Kind = "crypto"
	KindAuthBypass Kind = "authbypass"
	KindInfoLeak   Kind = "infoleak"
)

// Rule is one immutable detection signature. The pattern is evaluated
// case-insensitively against a single line of text.
type Rule struct {
	ID       string
	Kind     Kind
	Severity types.Severity
	Category string
	Message  string

	re *regexp.Regexp
}

// MatchLine reports whether the rule's pattern matches the given line.
func (r Rule) MatchLine(line string) bool {
	return r.re.MatchString(line)
}

// Pattern returns the textual form of the rule's matching expression.
func (r Rule) Pattern() string { return r.re.String() }

func rule(id string, kind Kind, sev types.Severity, category, message, pattern string) Rule {
	return Rule{
		ID:       id,
		Kind:     kind,
		Severity: sev,
		Category: category,
		Message:  message,
		re:       regexp.MustCompile(`(?i)` + pattern),
	}
}

// Match returns every rule in catalog order whose pattern matches the line.
// Callers must reject comment lines with IsComment before calling; Match
// itself is a pure function of (rules, line).
func Match(rules []Rule, line string) []Rule {
	var out []Rule
	for _, r := range rules {
		if r.MatchLine(line) {
			out = append(out, r)
		}
	}
	return out
}

// IsComment reports whether the trimmed line is a single-line comment
// (starting with "//", "#", or "*"). Such lines are never matched.
func IsComment(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") || strings.HasPrefix(t, "*")
}

// Default returns the built-in catalog in evaluation order. The returned
// slice is a fresh copy; the rules themselves are shared and read-only, safe
// for concurrent use.
func Default() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// IDs lists the rule IDs of the default catalog, in order.
func IDs() []string {
	ids := make([]string, len(defaultRules))
	for i, r := range defaultRules {
		ids[i] = r.ID
	}
	return ids
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sigscan/sigscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintFindingsGroupsConsecutiveCategories(t *testing.T) {
	findings := []types.Finding{
		{Severity: types.SevHigh, Category: "SQL Injection", File: "a.js", Line: 1, Message: "m1", Snippet: "s1"},
		{Severity: types.SevHigh, Category: "SQL Injection", File: "b.js", Line: 2, Message: "m2", Snippet: "s2"},
		{Severity: types.SevLow, Category: "Weak Randomness", File: "c.js", Line: 3, Message: "m3", Snippet: "s3"},
	}
	var buf bytes.Buffer
	PrintFindings(&buf, findings, PrintOptions{NoColor: true})

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "SQL Injection\n"), "consecutive same-category findings share one header")
	assert.Equal(t, 1, strings.Count(out, "Weak Randomness\n"))
	assert.Contains(t, out, "a.js:1")
	assert.Contains(t, out, "b.js:2")
	// high findings render before the low one (input already sorted)
	assert.Less(t, strings.Index(out, "a.js:1"), strings.Index(out, "c.js:3"))
}

func TestPrintFindingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintFindings(&buf, nil, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "No issues found.")
}

func TestPrintSummaryVerdict(t *testing.T) {
	totals := map[types.Severity]int{types.SevCritical: 1, types.SevLow: 2}
	var buf bytes.Buffer
	PrintFindings(&buf, nil, PrintOptions{NoColor: true, Totals: totals, Failed: true, FilesScanned: 4})

	out := buf.String()
	assert.Contains(t, out, "Findings: 3 (critical: 1, high: 0, medium: 0, low: 2)")
	assert.Contains(t, out, "Files scanned: 4")
	assert.Contains(t, out, "FAIL")

	buf.Reset()
	PrintFindings(&buf, nil, PrintOptions{NoColor: true, Totals: map[types.Severity]int{}, Failed: false})
	assert.Contains(t, buf.String(), "PASS")
}

func TestPrintFindingsNoColorHasNoEscapes(t *testing.T) {
	findings := []types.Finding{
		{Severity: types.SevCritical, Category: "Hardcoded Secret", File: "a.js", Line: 1, Message: "m", Snippet: "s"},
	}
	var buf bytes.Buffer
	PrintFindings(&buf, findings, PrintOptions{NoColor: true, Totals: Totals(findings), Failed: true})
	require.NotContains(t, buf.String(), "\x1b[")
}

package report

import (
	"path/filepath"
	"testing"

	"github.com/sigscan/sigscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sigscan.baseline.json")
	findings := []types.Finding{
		{Severity: types.SevCritical, Category: "Hardcoded Secret", File: "a.js", Line: 1, Snippet: `password = "x"`},
		{Severity: types.SevHigh, Category: "SQL Injection", File: "b.js", Line: 2, Snippet: `query("..." + id)`},
	}
	require.NoError(t, SaveBaseline(path, findings))

	base, err := LoadBaseline(path)
	require.NoError(t, err)

	// both findings are baselined away
	assert.Empty(t, FilterNewFindings(findings, base))

	// a new finding still surfaces
	fresh := types.Finding{Severity: types.SevHigh, Category: "Code Injection", File: "c.js", Line: 3, Snippet: "eval(x)"}
	got := FilterNewFindings(append(findings, fresh), base)
	require.Len(t, got, 1)
	assert.Equal(t, "c.js", got[0].File)
}

func TestBaselineSurvivesLineShift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sigscan.baseline.json")
	orig := types.Finding{Severity: types.SevCritical, Category: "Hardcoded Secret", File: "a.js", Line: 10, Snippet: `password = "x"`}
	require.NoError(t, SaveBaseline(path, []types.Finding{orig}))
	base, err := LoadBaseline(path)
	require.NoError(t, err)

	shifted := orig
	shifted.Line = 42
	assert.Empty(t, FilterNewFindings([]types.Finding{shifted}, base))
}

func TestLoadBaselineMissing(t *testing.T) {
	base, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.NotNil(t, base.Items)
	assert.Empty(t, FilterNewFindings(nil, base))
}

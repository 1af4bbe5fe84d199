package report

import (
	"testing"

	"github.com/sigscan/sigscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []types.Finding {
	return []types.Finding{
		{Severity: types.SevLow, Category: "Weak Randomness", File: "a.js", Line: 3},
		{Severity: types.SevHigh, Category: "SQL Injection", File: "b.js", Line: 1},
		{Severity: types.SevCritical, Category: "Hardcoded Secret", File: "c.js", Line: 9},
		{Severity: types.SevHigh, Category: "SQL Injection", File: "d.js", Line: 2},
		{Severity: types.SevMedium, Category: "Weak Cryptography", File: "e.js", Line: 5},
	}
}

func TestFilterBySeverityFloor(t *testing.T) {
	fs := sample()

	atHigh := Filter(fs, types.SevHigh)
	require.Len(t, atHigh, 3)
	for _, f := range atHigh {
		assert.LessOrEqual(t, f.Severity.Rank(), types.SevHigh.Rank())
	}

	atLow := Filter(fs, types.SevLow)
	assert.Len(t, atLow, len(fs))
}

func TestStricterFloorIsSubset(t *testing.T) {
	fs := sample()
	strict := Filter(fs, types.SevCritical)
	loose := Filter(fs, types.SevMedium)
	for _, f := range strict {
		assert.Contains(t, loose, f)
	}
}

func TestSortBySeverityStable(t *testing.T) {
	sorted := SortBySeverity(sample())
	require.Len(t, sorted, 5)
	assert.Equal(t, types.SevCritical, sorted[0].Severity)
	// the two high findings keep their discovery order
	assert.Equal(t, "b.js", sorted[1].File)
	assert.Equal(t, "d.js", sorted[2].File)
	assert.Equal(t, types.SevMedium, sorted[3].Severity)
	assert.Equal(t, types.SevLow, sorted[4].Severity)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	fs := sample()
	_ = SortBySeverity(fs)
	assert.Equal(t, types.SevLow, fs[0].Severity)
}

func TestTotals(t *testing.T) {
	totals := Totals(sample())
	assert.Equal(t, 1, totals[types.SevCritical])
	assert.Equal(t, 2, totals[types.SevHigh])
	assert.Equal(t, 1, totals[types.SevMedium])
	assert.Equal(t, 1, totals[types.SevLow])
}

func TestShouldFailOnlyOnCritical(t *testing.T) {
	assert.True(t, ShouldFail(sample()))

	advisory := []types.Finding{
		{Severity: types.SevHigh},
		{Severity: types.SevMedium},
		{Severity: types.SevLow},
	}
	assert.False(t, ShouldFail(advisory))
	assert.False(t, ShouldFail(nil))
}

func TestVerdictUnchangedByDisplayFloor(t *testing.T) {
	fs := sample()
	// the verdict always comes from the full set, whatever the display floor
	for _, floor := range types.Severities() {
		_ = Filter(fs, floor)
		assert.True(t, ShouldFail(fs))
	}
}

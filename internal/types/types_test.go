package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRankOrdering(t *testing.T) {
	assert.True(t, SevCritical.Rank() < SevHigh.Rank())
	assert.True(t, SevHigh.Rank() < SevMedium.Rank())
	assert.True(t, SevMedium.Rank() < SevLow.Rank())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"critical", SevCritical, false},
		{"CRITICAL", SevCritical, false},
		{"High", SevHigh, false},
		{"med", SevMedium, false},
		{" low ", SevLow, false},
		{"", SevLow, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

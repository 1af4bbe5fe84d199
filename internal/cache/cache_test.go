package cache

import (
	"testing"

	"github.com/sigscan/sigscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStable(t *testing.T) {
	a := Hash([]byte("password = \"abc\""))
	b := Hash([]byte("password = \"abc\""))
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, Hash([]byte("other")))
	assert.Equal(t, "0000000000000000", Hash(nil))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := DB{Entries: map[string]Entry{
		"src/app.js": {
			Hash: Hash([]byte("eval(x)")),
			Findings: []types.Finding{{
				Severity: types.SevHigh,
				Category: "Code Injection",
				File:     "src/app.js",
				Line:     1,
				Snippet:  "eval(x)",
			}},
		},
	}}
	require.NoError(t, Save(root, db))

	got, err := Load(root)
	require.NoError(t, err)
	require.Contains(t, got.Entries, "src/app.js")
	assert.Equal(t, db.Entries["src/app.js"].Hash, got.Entries["src/app.js"].Hash)
	require.Len(t, got.Entries["src/app.js"].Findings, 1)
	assert.Equal(t, types.SevHigh, got.Entries["src/app.js"].Findings[0].Severity)
}

func TestLoadMissingReturnsEmptyDB(t *testing.T) {
	db, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.NotNil(t, db.Entries)
	assert.Empty(t, db.Entries)
}

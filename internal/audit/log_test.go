package audit

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndHistory(t *testing.T) {
	l := New(t.TempDir())

	require.NoError(t, l.Append(ScanRecord{
		Timestamp:     time.Now(),
		Root:          "/tmp/project",
		TotalFindings: 3,
		Counts:        map[string]int{"critical": 1, "low": 2},
		FilesScanned:  10,
		Failed:        true,
	}))
	require.NoError(t, l.Append(ScanRecord{
		Timestamp:     time.Now(),
		Root:          "/tmp/project",
		TotalFindings: 0,
		FilesScanned:  10,
	}))

	records, err := l.History()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// newest first
	assert.Equal(t, 0, records[0].TotalFindings)
	assert.True(t, records[1].Failed)
	assert.NotEmpty(t, records[0].ScanID)
}

func TestHistorySkipsGarbledLines(t *testing.T) {
	l := New(t.TempDir())
	require.NoError(t, l.Append(ScanRecord{Timestamp: time.Now(), TotalFindings: 1}))

	// Simulate a crash mid-write: a line that is not valid JSON.
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("garbage not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, l.Append(ScanRecord{Timestamp: time.Now(), TotalFindings: 2}))

	records, err := l.History()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].TotalFindings)
	assert.Equal(t, 1, records[1].TotalFindings)
}

func TestHistoryMissingLog(t *testing.T) {
	l := New(t.TempDir())
	_, err := l.History()
	assert.Error(t, err)
}

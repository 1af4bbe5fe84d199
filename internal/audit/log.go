package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ScanRecord summarizes one completed scan for the append-only audit trail.
type ScanRecord struct {
	Timestamp     time.Time      `json:"timestamp"`
	ScanID        string         `json:"scan_id"`
	Root          string         `json:"root"`
	Repo          string         `json:"repo,omitempty"`
	Commit        string         `json:"commit,omitempty"`
	Branch        string         `json:"branch,omitempty"`
	TotalFindings int            `json:"total_findings"`
	Counts        map[string]int `json:"severity_counts"`
	FilesScanned  int            `json:"files_scanned"`
	FilesSkipped  int            `json:"files_skipped,omitempty"`
	Duration      string         `json:"duration"`
	Failed        bool           `json:"failed"`
}

type Log struct {
	path string
}

// New returns the audit log for a scan root, stored under .git when present
// to avoid accidental commits.
func New(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	path := filepath.Join(root, ".sigscan_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "sigscan_audit.jsonl")
	}
	return &Log{path: path}
}

// Append writes one record to the log. Failures are the caller's to ignore;
// auditing never blocks a scan.
func (l *Log) Append(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns recorded scans, newest first. Malformed lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	// One record per line; a garbled line must not stall the ones after it.
	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var r ScanRecord
		if err := json.Unmarshal(line, &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.js"), []byte("eval(x)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	findings, err := Scan(Config{Root: root, NoCache: true})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if len(RuleIDs()) == 0 {
		t.Fatal("expected non-empty rule IDs")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	fs := []Finding{{Severity: SevHigh, Category: "Code Injection", File: "a.js", Line: 1, Snippet: "eval(x)"}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, fs); err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != fs[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

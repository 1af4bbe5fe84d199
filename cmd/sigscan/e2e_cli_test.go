package sigscan

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// run executes the CLI as a subprocess to keep os.Exit out of the test
// process. Returns stdout and the exit code.
func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if ee, ok := err.(*exec.ExitError); ok {
		code = ee.ExitCode()
	} else if err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String(), code
}

func TestCLI_JSON_Shape_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte(`password = "hunter2"`), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := run(t, "scan", "--json", "--no-cache", "--no-update-check", "-p", dir)
	if code != 1 {
		t.Fatalf("expected exit code 1 for a critical finding, got %d", code)
	}
	var arr []map[string]any
	if err := json.Unmarshal([]byte(out), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(arr) == 0 {
		t.Fatalf("expected at least one finding in JSON output")
	}
	if sev, _ := arr[0]["severity"].(string); sev != "critical" {
		t.Fatalf("expected first sorted finding to be critical, got %q", sev)
	}
}

func TestCLI_CleanTreePasses(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := run(t, "scan", "--json", "--no-cache", "--no-update-check", "-p", dir)
	if code != 0 {
		t.Fatalf("expected exit code 0 for a clean tree, got %d\n%s", code, out)
	}
}

func TestCLI_BaselineResolvesAgainstScanRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte(`password = "hunter2"`), 0644); err != nil {
		t.Fatal(err)
	}
	// Baseline lives in the scanned dir, while the CLI runs from the module
	// root. It must still suppress the finding and flip the verdict.
	baseline := `{"items": {"app.js|Hardcoded Secret|password = \"hunter2\"": true}}`
	if err := os.WriteFile(filepath.Join(dir, "sigscan.baseline.json"), []byte(baseline), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := run(t, "scan", "--json", "--no-cache", "--no-update-check", "-p", dir)
	if code != 0 {
		t.Fatalf("baselined critical should not fail the scan, got exit %d\n%s", code, out)
	}
	var arr []map[string]any
	if err := json.Unmarshal([]byte(out), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(arr) != 0 {
		t.Fatalf("expected baselined finding to be suppressed, got %v", arr)
	}
}

func TestCLI_SARIF_Shape(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "handler.py"), []byte(`os.system("rm " + name)`), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := run(t, "scan", "--sarif", "--no-cache", "--no-update-check", "-p", dir)
	if code != 0 {
		t.Fatalf("high findings alone should not fail the scan, got exit %d", code)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("sarif json: %v\n%s", err, out)
	}
	if doc["version"] != "2.1.0" {
		t.Fatalf("expected SARIF 2.1.0")
	}
}

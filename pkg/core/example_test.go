package core_test

import (
	"fmt"
	"os"

	"github.com/sigscan/sigscan/pkg/core"
)

// ExampleScan demonstrates how to perform a simple scan of a directory.
func ExampleScan() {
	// 1. Configure the scan
	cfg := core.Config{
		Root:         ".",           // Scan the current directory
		Threads:      4,             // Number of concurrent workers
		IncludeGlobs: "*.go",        // Only scan Go files (optional)
		MaxBytes:     1024 * 1024,   // Skip files larger than 1MB
	}

	// 2. Run the scan
	findings, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		return
	}

	// 3. Process findings
	if len(findings) == 0 {
		fmt.Println("No issues found.")
	} else {
		fmt.Printf("Found %d issues.\n", len(findings))
		// Helper to write JSON output to stdout
		_ = core.MarshalFindings(os.Stdout, findings)
	}
}

// ExampleScanWithStats shows how to run a scan and retrieve execution statistics.
func ExampleScanWithStats() {
	cfg := core.Config{
		Root:    "testdata",
		NoCache: true,
	}

	// Run scan and get detailed result object
	result, err := core.ScanWithStats(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scanned %d files in %s\n", result.FilesScanned, result.Duration)
	fmt.Printf("Found %d findings\n", len(result.Findings))

	if result.Failed {
		fmt.Println("Verdict: FAIL (critical findings present)")
	}
}

package sigscan

import (
	"fmt"
	"path/filepath"

	"github.com/sigscan/sigscan/internal/cache"
	"github.com/sigscan/sigscan/internal/engine"
	"github.com/sigscan/sigscan/internal/tui"
	"github.com/sigscan/sigscan/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	var path string
	var rescan bool
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse findings interactively",
		Long:  "Browse opens the results of the last scan in an interactive terminal UI. Use --rescan to run a fresh scan first.",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(path)
			doScan := func() ([]types.Finding, error) {
				cfg := engine.Config{Root: abs, Threads: flagThreads, NoCache: flagNoCache}
				findings, err := engine.Scan(cfg)
				if err != nil {
					return nil, err
				}
				_ = cache.SaveResults(abs, findings)
				return findings, nil
			}

			var findings []types.Finding
			if !rescan {
				if results, err := cache.LoadResults(abs); err == nil {
					findings = results.Findings
				}
			}
			if findings == nil {
				fresh, err := doScan()
				if err != nil {
					return fmt.Errorf("scan error: %w", err)
				}
				findings = fresh
			}
			return tui.Run(abs, findings, doScan)
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", ".", "path whose results to browse")
	cmd.Flags().BoolVar(&rescan, "rescan", false, "run a fresh scan before opening")
	rootCmd.AddCommand(cmd)
}

package sigscan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sigscan/sigscan/internal/engine"
	"github.com/sigscan/sigscan/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var out string
	update := &cobra.Command{
		Use:   "update",
		Short: "Accept all current findings into the baseline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(".")
			if !filepath.IsAbs(out) {
				out = filepath.Join(abs, out)
			}
			cfg := engine.Config{Root: abs, Threads: flagThreads, NoCache: flagNoCache}
			findings, err := engine.Scan(cfg)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(out, findings); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Baseline updated: %d findings accepted.\n", len(findings))
			return nil
		},
	}
	update.Flags().StringVar(&out, "output", "sigscan.baseline.json", "baseline file to write")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}

package sigscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/sigscan/sigscan/internal/config"
	"github.com/sigscan/sigscan/internal/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput      string
	cfgInclude     string
	cfgExclude     string
	cfgThreads     int
	cfgMaxBytes    int64
	cfgMinSeverity string
	cfgNoColor     bool
	cfgNoCache     bool
	cfgBaseline    string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .sigscan.yml with selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".sigscan.yml", "output file path")
	initCmd.Flags().StringVar(&cfgInclude, "include", "", "comma-separated include globs")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "comma-separated exclude globs")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=GOMAXPROCS)")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	initCmd.Flags().StringVar(&cfgMinSeverity, "severity", "", "default display floor: critical|high|medium|low")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgNoCache, "no-cache", false, "disable the incremental cache by default")
	initCmd.Flags().StringVar(&cfgBaseline, "baseline", "", "baseline file path")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if s := strings.TrimSpace(cfgMinSeverity); s != "" {
		if _, err := types.ParseSeverity(s); err != nil {
			return err
		}
	}

	fc := config.FileConfig{
		Include:     optStrPtr(cfgInclude),
		Exclude:     optStrPtr(cfgExclude),
		MaxBytes:    int64Ptr(cfgMaxBytes),
		Threads:     intPtr(cfgThreads),
		MinSeverity: optStrPtr(cfgMinSeverity),
		NoColor:     boolPtr(cfgNoColor),
		NoCache:     boolPtr(cfgNoCache),
		Baseline:    optStrPtr(cfgBaseline),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

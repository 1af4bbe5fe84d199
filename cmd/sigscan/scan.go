package sigscan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sigscan/sigscan/internal/audit"
	"github.com/sigscan/sigscan/internal/cache"
	"github.com/sigscan/sigscan/internal/config"
	"github.com/sigscan/sigscan/internal/engine"
	"github.com/sigscan/sigscan/internal/git"
	"github.com/sigscan/sigscan/internal/logging"
	"github.com/sigscan/sigscan/internal/report"
	"github.com/sigscan/sigscan/internal/types"
	"github.com/sigscan/sigscan/internal/update"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagPath     string
	flagFiles    []string
	flagChanged  bool
	flagBase     string
	flagSeverity string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagBaseline string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan source files for dangerous patterns",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringSliceVar(&flagFiles, "files", nil, "scan only these files (skips traversal)")
	cmd.Flags().BoolVar(&flagChanged, "changed", false, "scan only files changed in git")
	cmd.Flags().StringVar(&flagBase, "base", "", "with --changed, also diff vs this branch (e.g. main)")
	cmd.Flags().StringVar(&flagSeverity, "severity", "", "only show findings at or above this severity (critical|high|medium|low)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file of accepted findings (default sigscan.baseline.json)")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	logging.Init(flagVerbose)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	cfg := engine.Config{
		Root:         abs,
		Files:        flagFiles,
		ChangedOnly:  flagChanged,
		BaseBranch:   flagBase,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     resolveMaxBytes(cmd.Flags().Changed("max-bytes"), flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	machine := flagJSON || flagSARIF

	// Friendly banner before scanning
	if !machine {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'sigscan update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Scanning %s with %d signatures...\n", abs, len(engine.RuleIDs()))
	}

	// Optional progress meter
	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 0 && !machine {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if total > 0 && !machine {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	// Persist for `sigscan browse`; never fail the scan over it.
	_ = cache.SaveResults(abs, res.Findings)

	// Accepted findings in the baseline drop out entirely, including from
	// the verdict. The severity floor below filters display only.
	baselinePath := pickString(flagBaseline, lcfg.Baseline, gcfg.Baseline)
	if baselinePath == "" {
		baselinePath = "sigscan.baseline.json"
	}
	// Relative baseline paths live in the scan root, not the process CWD,
	// so `scan -p dir` and `baseline update` run inside dir agree.
	if !filepath.IsAbs(baselinePath) {
		baselinePath = filepath.Join(abs, baselinePath)
	}
	baseline, _ := report.LoadBaseline(baselinePath)
	newFindings := report.FilterNewFindings(res.Findings, baseline)
	if newFindings == nil {
		newFindings = []types.Finding{}
	} // no `null` in JSON

	failed := report.ShouldFail(newFindings)
	totals := report.Totals(newFindings)

	floor := types.SevLow
	if s := pickString(flagSeverity, lcfg.MinSeverity, gcfg.MinSeverity); s != "" {
		floor, err = types.ParseSeverity(s)
		if err != nil {
			return err
		}
	}
	visible := report.SortBySeverity(report.Filter(newFindings, floor))

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, visible, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(visible); err != nil {
			return err
		}
	default:
		report.PrintFindings(os.Stdout, visible, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
			FilesSkipped: res.FilesSkipped,
			Totals:       totals,
			Failed:       failed,
		})
	}

	// Audit trail is best effort.
	repo, commit, branch := git.Metadata(abs)
	_ = audit.New(abs).Append(audit.ScanRecord{
		Timestamp:     time.Now(),
		Root:          abs,
		Repo:          repo,
		Commit:        commit,
		Branch:        branch,
		TotalFindings: len(newFindings),
		Counts:        severityCounts(totals),
		FilesScanned:  res.FilesScanned,
		FilesSkipped:  res.FilesSkipped,
		Duration:      res.Duration.String(),
		Failed:        failed,
	})

	if failed {
		os.Exit(1)
	}
	return nil
}

func severityCounts(totals map[types.Severity]int) map[string]int {
	out := make(map[string]int, len(totals))
	for sev, n := range totals {
		out[string(sev)] = n
	}
	return out
}

package sigscan

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/sigscan/sigscan/internal/audit"
	"github.com/spf13/cobra"
)

func init() {
	var path string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan results for this repo",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(path)
			records, err := audit.New(abs).History()
			if err != nil {
				return fmt.Errorf("no scan history for %s", abs)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tFINDINGS\tFILES\tDURATION\tVERDICT")
			for _, r := range records {
				verdict := "pass"
				if r.Failed {
					verdict = "FAIL"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.TotalFindings, r.FilesScanned, r.Duration, verdict)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", ".", "repo whose history to show")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show at most this many scans")
	rootCmd.AddCommand(cmd)
}

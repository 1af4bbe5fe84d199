package sigscan

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sigscan/sigscan/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	var long bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the signature catalog",
		Run: func(_ *cobra.Command, _ []string) {
			if !long {
				for _, id := range catalog.IDs() {
					fmt.Println(id)
				}
				return
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSEVERITY\tCATEGORY\tMESSAGE")
			for _, r := range catalog.Default() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Severity, r.Category, r.Message)
			}
			_ = w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "include severity, category and message")
	rootCmd.AddCommand(cmd)
}

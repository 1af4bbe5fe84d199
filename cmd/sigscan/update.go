package sigscan

import (
	"fmt"
	"os"

	"github.com/sigscan/sigscan/internal/update"
	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the sigscan version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("sigscan", version)
			if flagNoUpdateCheck {
				return
			}
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'sigscan update' to upgrade\n", latest)
			}
		},
	}
	rootCmd.AddCommand(versionCmd)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update sigscan to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Println("sigscan is up to date")
			return nil
		},
	}
	rootCmd.AddCommand(updateCmd)
}

package sigscan

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sigscan/sigscan/internal/catalog"
	"github.com/spf13/cobra"
)

// gendocs regenerates the rule categories section in README.md between
// the markers <!-- BEGIN:RULE_CATEGORIES --> and <!-- END:RULE_CATEGORIES -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README rule categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:RULE_CATEGORIES -->")
			end := []byte("<!-- END:RULE_CATEGORIES -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			byKind := map[catalog.Kind][]string{}
			for _, r := range catalog.Default() {
				byKind[r.Kind] = append(byKind[r.Kind], r.ID)
			}
			var out strings.Builder
			out.WriteString("\nCategories and rule IDs (run `sigscan rules --long` for severities and messages):\n\n")
			write := func(title string, kind catalog.Kind) {
				ids := byKind[kind]
				if len(ids) == 0 {
					return
				}
				sort.Strings(ids)
				out.WriteString("- " + title + ":\n")
				out.WriteString("  - " + strings.Join(ids, ", ") + "\n")
			}
			write("Hardcoded secrets", catalog.KindSecret)
			write("Injection sinks", catalog.KindInjection)
			write("Cross-site scripting", catalog.KindXSS)
			write("Weak cryptography", catalog.KindCrypto)
			write("Authentication bypass", catalog.KindAuthBypass)
			write("Information disclosure", catalog.KindInfoLeak)

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString("\n")
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}

package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var discoverJSON bool

var discoverCmd = &cobra.Command{
	Use:   "discover <path>",
	Short: "Find skill roots inside a directory tree",
	Long: `Scan an arbitrary directory (say, a freshly cloned repository) for
directories that look like skill roots, ranked by how many bundles they
hold. Useful to preview what an import would pick up.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	start, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	roots := svc.DiscoverImportRoots(start)

	if discoverJSON {
		return printJSON(cmd, roots)
	}
	if len(roots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skill roots found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SKILLS\tPATH")
	for _, root := range roots {
		fmt.Fprintf(w, "%d\t%s\n", root.SkillCount, root.Path)
	}
	return w.Flush()
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillyard-labs/skillyard/internal/config"
	"github.com/skillyard-labs/skillyard/internal/hub"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the public skill hub",
	Long: `Search the skill hub for published skills. Results carry an owner/repo
source that can be passed straight to install:

    skillyard search changelog
    skillyard install owner/repo --skill changelog-writer --tool claude-code`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client := hub.New(hub.WithBaseURL(config.Get(config.KeyHubBaseURL)))
	results, err := client.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if searchJSON {
		return printJSON(cmd, results)
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No skills found matching %q\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SKILL\tNAME\tINSTALLS\tSOURCE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.SkillID, r.Name, r.Installs, r.Source)
	}
	return w.Flush()
}

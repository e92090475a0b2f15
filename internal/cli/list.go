package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listToolFilter string
	listJSON       bool
	listStats      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills across all enabled tools",
	Long: `List the merged skill catalog: every bundle found under the skills root of
each enabled tool, deduplicated by name. The TOOLS column shows which tools
a skill is installed for.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listToolFilter, "tool", "", "Only show skills enabled for this tool id")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listStats, "stats", false, "Print catalog totals after the table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	dash, err := svc.BuildDashboard(cmd.Context())
	if err != nil {
		return err
	}

	skills := dash.Skills
	if listToolFilter != "" {
		filtered := skills[:0]
		for _, skill := range skills {
			for _, toolID := range skill.EnabledFor {
				if toolID == listToolFilter {
					filtered = append(filtered, skill)
					break
				}
			}
		}
		skills = filtered
	}

	if listJSON {
		return printJSON(cmd, skills)
	}

	if len(skills) == 0 {
		if listToolFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No skills installed for tool %q.\n", listToolFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No skills installed yet.")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTOOLS\tDESCRIPTION")
	for _, skill := range skills {
		desc := skill.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", skill.Name, strings.Join(skill.EnabledFor, ","), desc)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if listStats {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d skills, %d tools detected, %d enabled\n",
			dash.Stats.InstalledSkills, dash.Stats.DetectedTools, dash.Stats.EnabledTools)
	}
	return nil
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillyard-labs/skillyard/internal/tools"
)

var toolsJSON bool

var (
	toolAddName       string
	toolAddConfigPath string
	toolAddSkillsPath string
	toolAddCli        bool
)

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output in JSON format")

	toolsAddCmd.Flags().StringVar(&toolAddName, "name", "", "Display name (defaults to the id)")
	toolsAddCmd.Flags().StringVar(&toolAddConfigPath, "config-path", "", "Tool config file or directory (may start with ~/)")
	toolsAddCmd.Flags().StringVar(&toolAddSkillsPath, "skills-path", "", "Directory the tool loads skills from (may start with ~/)")
	toolsAddCmd.Flags().BoolVar(&toolAddCli, "cli", false, "Mark the tool as CLI-based")
	toolsAddCmd.MarkFlagRequired("skills-path")

	toolsCmd.AddCommand(toolsAddCmd)
	toolsCmd.AddCommand(toolsRemoveCmd)
	toolsCmd.AddCommand(toolsEnableCmd)
	toolsCmd.AddCommand(toolsDisableCmd)
	toolsCmd.AddCommand(toolsReorderCmd)
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List and manage tool integrations",
	Long: `List the known AI tool integrations with their detection and enable state.
Built-in tools are detected from their config or skills directories;
custom tools are yours to add and remove.`,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	infos, err := svc.ResolveTools()
	if err != nil {
		return err
	}

	if toolsJSON {
		return printJSON(cmd, infos)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tDETECTED\tENABLED\tSKILLS PATH")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Name, info.Kind, yesNo(info.Detected), yesNo(info.Enabled), info.SkillsPath)
	}
	return w.Flush()
}

var toolsAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add or update a custom tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		name := toolAddName
		if name == "" {
			name = args[0]
		}
		saved, err := svc.UpsertCustomTool(tools.Definition{
			ID:         args[0],
			Name:       name,
			ConfigPath: toolAddConfigPath,
			SkillsPath: toolAddSkillsPath,
			Cli:        toolAddCli,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved custom tool %s\n", saved.ID)
		return nil
	},
}

var toolsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		if err := svc.DeleteCustomTool(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed custom tool %s\n", args[0])
		return nil
	},
}

var toolsEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a tool for scanning",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setToolEnabled(cmd, args[0], true) },
}

var toolsDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setToolEnabled(cmd, args[0], false) },
}

func setToolEnabled(cmd *cobra.Command, toolID string, enabled bool) error {
	svc, err := service()
	if err != nil {
		return err
	}
	if err := svc.SetToolEnabled(toolID, enabled); err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tool %s %s\n", toolID, state)
	return nil
}

var toolsReorderCmd = &cobra.Command{
	Use:   "reorder <id> [id...]",
	Short: "Set the dashboard display order",
	Long: `Persist an explicit display order. Tools not named keep their alphabetical
position after the ordered ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		if err := svc.ReorderTools(args); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tool order updated")
		return nil
	},
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

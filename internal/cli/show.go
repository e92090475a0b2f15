package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	showFiles bool
	showEntry string
)

var showCmd = &cobra.Command{
	Use:   "show <bundle-path>",
	Short: "Print a skill's descriptor",
	Long: `Print the SKILL.md of the bundle at the given path. The path must sit
under the skills root of one of the known tools.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFiles, "files", false, "List the bundle's files instead of the descriptor")
	showCmd.Flags().StringVar(&showEntry, "entry", "", "Print one file inside the bundle (relative path)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	switch {
	case showFiles:
		entries, err := svc.ListSkillFiles(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/\n", entry.RelativePath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), entry.RelativePath)
			}
		}
		return nil
	case showEntry != "":
		content, err := svc.ReadSkillEntry(path, showEntry)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	default:
		content, err := svc.ReadSkillFile(path)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
}

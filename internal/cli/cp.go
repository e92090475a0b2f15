package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cpCmd = &cobra.Command{
	Use:   "cp <bundle-path> <tool-id>",
	Short: "Copy an installed skill to another tool",
	Long: `Duplicate a bundle into the skills root of another tool. The copy lands in
a fresh directory; the source is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		source, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		record, err := svc.CopySkillToTool(source, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %q to %s\n", record.Name, record.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cpCmd)
}

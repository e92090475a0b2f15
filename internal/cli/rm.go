package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	rmEntry string
	rmDir   string
)

var rmCmd = &cobra.Command{
	Use:   "rm <bundle-path>",
	Short: "Move a skill (or one of its files) to the trash",
	Long: `Delete recoverable: nothing is unlinked. The target moves into the
skillyard trash directory, where it can be restored by hand.

Without flags the whole bundle is trashed. --entry trashes one file inside
it; --dir trashes one empty directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().StringVar(&rmEntry, "entry", "", "Trash this file inside the bundle (relative path)")
	rmCmd.Flags().StringVar(&rmDir, "dir", "", "Trash this empty directory inside the bundle (relative path)")
	rmCmd.MarkFlagsMutuallyExclusive("entry", "dir")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	bundle, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	switch {
	case rmEntry != "":
		if err := svc.DeleteSkillEntry(bundle, rmEntry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trashed %s from %s\n", rmEntry, bundle)
	case rmDir != "":
		if err := svc.DeleteSkillEmptyDir(bundle, rmDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trashed directory %s from %s\n", rmDir, bundle)
	default:
		if err := svc.DeleteSkill(bundle); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trashed skill at %s\n", bundle)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editorModeCmd = &cobra.Command{
	Use:   "editor-mode <view|edit>",
	Short: "Set whether skills open read-only or editable by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		if err := svc.SetSkillEditorDefaultMode(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Editor default mode set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editorModeCmd)
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var revealCmd = &cobra.Command{
	Use:   "reveal <bundle-path>",
	Short: "Open a skill in the system file manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		return svc.RevealInFileManager(path)
	},
}

func init() {
	rootCmd.AddCommand(revealCmd)
}

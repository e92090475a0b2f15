package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the GitHub token used for sharing",
	Long: `The token is stored in the settings document and used only to create
gists. A fine-grained token with the gist scope is enough.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store a GitHub token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		if err := svc.SetGithubToken(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token stored")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		if err := svc.SetGithubToken(""); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token cleared")
		return nil
	},
}

var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a token is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service()
		if err != nil {
			return err
		}
		token, err := svc.GithubToken()
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No token stored")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Token stored")
		}
		return nil
	},
}

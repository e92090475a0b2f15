package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillyard-labs/skillyard/internal/config"
	"github.com/skillyard-labs/skillyard/internal/skills"
)

var (
	installTool  string
	installPath  string
	installSkill string
)

var installCmd = &cobra.Command{
	Use:   "install <repo-url | owner/repo>",
	Short: "Install a skill from a GitHub repository",
	Long: `Shallow-clone a repository and import one skill bundle from it into the
target tool's skills root.

A full https://github.com/... URL may carry --path to name the bundle
directory inside the repository; without it the bundle is located
automatically. An owner/repo reference (as returned by search) is resolved
through the hub conventions: --skill names the bundle directory to look
for, with a fallback to the first bundle found.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installTool, "tool", "", "Target tool id")
	installCmd.Flags().StringVar(&installPath, "path", "", "Bundle directory inside the repository")
	installCmd.Flags().StringVar(&installSkill, "skill", "", "Bundle directory name to search for (owner/repo installs)")
	installCmd.MarkFlagRequired("tool")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}

	timeout := time.Duration(config.GetInt(config.KeyCloneTimeout)) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var record skills.Record
	if strings.HasPrefix(args[0], "https://") {
		record, err = svc.InstallFromRepo(ctx, args[0], installPath, installTool)
	} else {
		record, err = svc.InstallFromHub(ctx, args[0], installSkill, installTool)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %q at %s\n", record.Name, record.Path)
	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	saveTool         string
	saveExistingPath string
	saveEntry        string
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Create or update a skill from descriptor content",
	Long: `Save descriptor content as a skill of the target tool. Content comes from
the given file, or from stdin when no file (or "-") is passed. Without
--path a fresh bundle directory named after the skill is created; with
--path an existing bundle is updated in place.

With --entry the content is written to one file inside the bundle at --path
instead of replacing the descriptor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveTool, "tool", "", "Target tool id")
	saveCmd.Flags().StringVar(&saveExistingPath, "path", "", "Existing bundle directory to update")
	saveCmd.Flags().StringVar(&saveEntry, "entry", "", "Write this file inside the bundle instead of SKILL.md (requires --path)")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	content, err := readSaveContent(cmd, args)
	if err != nil {
		return err
	}

	svc, err := service()
	if err != nil {
		return err
	}

	if saveEntry != "" {
		if saveExistingPath == "" {
			return fmt.Errorf("--entry requires --path")
		}
		bundle, err := filepath.Abs(saveExistingPath)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", saveExistingPath, err)
		}
		if err := svc.SaveSkillEntry(bundle, saveEntry, content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s in %s\n", saveEntry, bundle)
		return nil
	}

	if saveTool == "" {
		return fmt.Errorf("--tool is required")
	}
	existing := saveExistingPath
	if existing != "" {
		existing, err = filepath.Abs(existing)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", saveExistingPath, err)
		}
	}
	record, err := svc.SaveSkill(content, saveTool, existing)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved skill %q at %s\n", record.Name, record.Path)
	return nil
}

func readSaveContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillyard-labs/skillyard/internal/config"
	"github.com/skillyard-labs/skillyard/internal/gist"
	"github.com/skillyard-labs/skillyard/internal/skills"
)

var shareEntry string

var shareCmd = &cobra.Command{
	Use:   "share <bundle-path>",
	Short: "Publish a skill excerpt as a private gist",
	Long: `Publish the bundle's descriptor (or one file inside it, with --entry) as a
private GitHub gist and print its URL. Requires a stored GitHub token; set
one with 'skillyard token set'.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&shareEntry, "entry", "", "Share this file inside the bundle (relative path)")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	svc, err := service()
	if err != nil {
		return err
	}
	bundle, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	descriptor, err := svc.ReadSkillFile(bundle)
	if err != nil {
		return err
	}
	meta := skills.ParseMeta(descriptor, filepath.Base(bundle))

	selected := descriptor
	sharedFile := skills.DescriptorName
	if shareEntry != "" {
		selected, err = svc.ReadSkillEntry(bundle, shareEntry)
		if err != nil {
			return err
		}
		sharedFile = shareEntry
	}

	token, err := svc.GithubToken()
	if err != nil {
		return err
	}

	client := gist.New(gist.WithAPIBase(config.Get(config.KeyGithubAPIBase)))
	url, err := client.CreateExcerpt(cmd.Context(), token, gist.ExcerptRequest{
		SkillName:        meta.Name,
		SkillDescription: meta.Description,
		FilePath:         sharedFile,
		SelectedText:     selected,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

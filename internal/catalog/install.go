package catalog

import (
	"context"
	"strings"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/pathguard"
	"github.com/skillyard-labs/skillyard/internal/skills"
	"github.com/skillyard-labs/skillyard/internal/vcs"
)

const githubURLPrefix = "https://github.com/"

// InstallFromRepo shallow-clones a GitHub repository and imports one skill
// bundle from it into the target tool's root. With skillPath empty the
// bundle directory is located automatically; otherwise it names the bundle
// relative to the repository root. The clone directory is removed
// best-effort afterwards.
func (s *Service) InstallFromRepo(ctx context.Context, repoURL, skillPath, targetToolID string) (skills.Record, error) {
	repoURL = strings.TrimSpace(repoURL)
	if !strings.HasPrefix(repoURL, githubURLPrefix) {
		return skills.Record{}, errdefs.Validationf("only GitHub repository URLs are supported")
	}

	doc, err := s.store.Load()
	if err != nil {
		return skills.Record{}, err
	}
	tool, err := s.loadTool(doc, targetToolID)
	if err != nil {
		return skills.Record{}, err
	}

	tmp := vcs.TempCloneDir()
	defer vcs.CleanupDir(tmp)
	if err := vcs.ShallowClone(ctx, repoURL, tmp); err != nil {
		return skills.Record{}, err
	}

	var sourceDir string
	if skillPath != "" {
		sourceDir, err = pathguard.JoinUnder(tmp, skillPath)
		if err != nil {
			return skills.Record{}, err
		}
	} else {
		dir, ok := skills.DiscoverDir(tmp)
		if !ok {
			return skills.Record{}, errdefs.NotFoundf("unable to determine the skill directory automatically; pass an explicit path")
		}
		sourceDir = dir
	}

	return s.importBundle(sourceDir, tool)
}

// InstallFromHub installs a hub search result. source is the "owner/repo"
// reference the hub returned; skillID names the bundle directory expected
// inside it, with a fallback to the first bundle found.
func (s *Service) InstallFromHub(ctx context.Context, source, skillID, targetToolID string) (skills.Record, error) {
	source = strings.TrimSpace(source)
	if source == "" || !strings.Contains(source, "/") {
		return skills.Record{}, errdefs.Validationf("hub source must be an owner/repo reference")
	}

	doc, err := s.store.Load()
	if err != nil {
		return skills.Record{}, err
	}
	tool, err := s.loadTool(doc, targetToolID)
	if err != nil {
		return skills.Record{}, err
	}

	tmp := vcs.TempCloneDir()
	defer vcs.CleanupDir(tmp)
	if err := vcs.ShallowClone(ctx, githubURLPrefix+source, tmp); err != nil {
		return skills.Record{}, err
	}

	sourceDir, ok := skills.DiscoverDirByName(tmp, skillID)
	if !ok {
		sourceDir, ok = skills.DiscoverDir(tmp)
	}
	if !ok {
		return skills.Record{}, errdefs.NotFoundf("could not find skill %q in repository %s", skillID, source)
	}

	return s.importBundle(sourceDir, tool)
}

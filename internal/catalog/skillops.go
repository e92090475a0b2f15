package catalog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/fileops"
	"github.com/skillyard-labs/skillyard/internal/pathguard"
	"github.com/skillyard-labs/skillyard/internal/settings"
	"github.com/skillyard-labs/skillyard/internal/skills"
	"github.com/skillyard-labs/skillyard/internal/slug"
	"github.com/skillyard-labs/skillyard/internal/tools"
)

// SaveSkill writes descriptor content as a skill of the target tool. With
// existingPath the bundle is updated in place (after authorization);
// otherwise a fresh directory named after the parsed skill name is created
// under the tool's root.
func (s *Service) SaveSkill(content, targetToolID, existingPath string) (skills.Record, error) {
	doc, err := s.store.Load()
	if err != nil {
		return skills.Record{}, err
	}
	tool, err := s.loadTool(doc, targetToolID)
	if err != nil {
		return skills.Record{}, err
	}

	meta := skills.ParseMeta(content, "skill")

	var targetDir string
	if existingPath != "" {
		if err := s.guard(existingPath); err != nil {
			return skills.Record{}, err
		}
		targetDir = existingPath
	} else {
		targetDir = fileops.UniqueDir(tool.SkillsPath, slug.Make(meta.Name))
	}
	if err := fileops.EnsureDir(targetDir); err != nil {
		return skills.Record{}, err
	}
	if err := fileops.WriteFile(filepath.Join(targetDir, skills.DescriptorName), []byte(content)); err != nil {
		return skills.Record{}, err
	}

	return skills.Record{
		ID:           tool.ID + ":" + filepath.Base(targetDir),
		Name:         meta.Name,
		Description:  meta.Description,
		Path:         targetDir,
		SourceToolID: tool.ID,
		EnabledFor:   []string{tool.ID},
		UpdatedAt:    time.Now().Unix(),
	}, nil
}

// DeleteSkill trashes a whole bundle directory.
func (s *Service) DeleteSkill(path string) error {
	if err := s.guard(path); err != nil {
		return err
	}
	return fileops.DeleteTree(path, s.bin)
}

// CopySkillToTool duplicates an installed bundle into another tool's root.
// The source must already live under a sanctioned root; the copy lands in a
// fresh uniquely named directory.
func (s *Service) CopySkillToTool(sourcePath, targetToolID string) (skills.Record, error) {
	roots, doc, err := s.sanctionedRoots()
	if err != nil {
		return skills.Record{}, err
	}
	if err := pathguard.Authorize(sourcePath, roots); err != nil {
		return skills.Record{}, err
	}
	tool, err := s.loadTool(doc, targetToolID)
	if err != nil {
		return skills.Record{}, err
	}
	return s.importBundle(sourcePath, tool)
}

// importBundle copies a validated bundle directory into the tool's root and
// builds its record from the copied descriptor.
func (s *Service) importBundle(sourceDir string, tool tools.Info) (skills.Record, error) {
	descriptor := filepath.Join(sourceDir, skills.DescriptorName)
	if _, err := os.Stat(descriptor); err != nil {
		return skills.Record{}, errdefs.NotFoundf("skill folder invalid: %s", sourceDir)
	}

	defaultName := filepath.Base(sourceDir)
	target := fileops.UniqueDir(tool.SkillsPath, slug.Make(defaultName))
	if err := fileops.CopyDir(sourceDir, target); err != nil {
		return skills.Record{}, err
	}

	content, err := os.ReadFile(filepath.Join(target, skills.DescriptorName))
	if err != nil {
		return skills.Record{}, errdefs.Iof(err, "reading copied descriptor in %s", target)
	}
	meta := skills.ParseMeta(string(content), defaultName)

	return skills.Record{
		ID:           tool.ID + ":" + filepath.Base(target),
		Name:         meta.Name,
		Description:  meta.Description,
		Path:         target,
		SourceToolID: tool.ID,
		EnabledFor:   []string{tool.ID},
		UpdatedAt:    time.Now().Unix(),
	}, nil
}

// loadTool fetches one tool and makes sure its skills root exists.
func (s *Service) loadTool(doc *settings.Document, toolID string) (tools.Info, error) {
	tool, err := tools.FindByID(doc, toolID)
	if err != nil {
		return tools.Info{}, err
	}
	if err := fileops.EnsureDir(tool.SkillsPath); err != nil {
		return tools.Info{}, err
	}
	return tool, nil
}

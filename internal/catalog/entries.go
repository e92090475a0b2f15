package catalog

import (
	"os"
	"path/filepath"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/fileops"
	"github.com/skillyard-labs/skillyard/internal/pathguard"
	"github.com/skillyard-labs/skillyard/internal/skills"
)

// resolveEntry guards the bundle root and confines rel beneath it. Every
// entry operation goes through here, so a traversal attempt fails before
// any filesystem call.
func (s *Service) resolveEntry(bundlePath, rel string) (string, error) {
	if err := s.guard(bundlePath); err != nil {
		return "", err
	}
	return pathguard.JoinUnder(bundlePath, rel)
}

// ReadSkillFile returns the descriptor content of the bundle at path.
func (s *Service) ReadSkillFile(path string) (string, error) {
	if err := s.guard(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(path, skills.DescriptorName))
	if err != nil {
		return "", errdefs.Iof(err, "reading descriptor of %s", path)
	}
	return string(data), nil
}

// ListSkillFiles lists every non-hidden entry inside the bundle at path,
// as slash-relative paths sorted ascending.
func (s *Service) ListSkillFiles(path string) ([]fileops.Entry, error) {
	if err := s.guard(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errdefs.NotFoundf("skill path does not exist: %s", path)
	}
	return fileops.ListEntries(path)
}

// ReadSkillEntry returns the content of one file inside a bundle.
func (s *Service) ReadSkillEntry(bundlePath, rel string) (string, error) {
	target, err := s.resolveEntry(bundlePath, rel)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(target)
	if err != nil {
		return "", errdefs.NotFoundf("file does not exist: %s", rel)
	}
	if !fi.Mode().IsRegular() {
		return "", errdefs.Validationf("path is not a file: %s", rel)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return "", errdefs.Iof(err, "reading %s", target)
	}
	return string(data), nil
}

// SaveSkillEntry overwrites one file inside a bundle, creating parent
// directories on demand.
func (s *Service) SaveSkillEntry(bundlePath, rel, content string) error {
	target, err := s.resolveEntry(bundlePath, rel)
	if err != nil {
		return err
	}
	return fileops.WriteFile(target, []byte(content))
}

// CreateSkillDir creates a directory inside a bundle. Idempotent.
func (s *Service) CreateSkillDir(bundlePath, rel string) error {
	target, err := s.resolveEntry(bundlePath, rel)
	if err != nil {
		return err
	}
	return fileops.EnsureDir(target)
}

// RenameSkillEntry moves a file or directory within a bundle.
func (s *Service) RenameSkillEntry(bundlePath, oldRel, newRel string) error {
	oldTarget, err := s.resolveEntry(bundlePath, oldRel)
	if err != nil {
		return err
	}
	newTarget, err := pathguard.JoinUnder(bundlePath, newRel)
	if err != nil {
		return err
	}
	return fileops.Rename(oldTarget, newTarget)
}

// DeleteSkillEntry trashes one file inside a bundle.
func (s *Service) DeleteSkillEntry(bundlePath, rel string) error {
	target, err := s.resolveEntry(bundlePath, rel)
	if err != nil {
		return err
	}
	return fileops.DeleteFile(target, s.bin)
}

// DeleteSkillEmptyDir trashes one empty directory inside a bundle.
func (s *Service) DeleteSkillEmptyDir(bundlePath, rel string) error {
	target, err := s.resolveEntry(bundlePath, rel)
	if err != nil {
		return err
	}
	return fileops.DeleteEmptyDir(target, s.bin)
}

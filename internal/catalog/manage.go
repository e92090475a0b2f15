package catalog

import (
	"strings"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/platform"
	"github.com/skillyard-labs/skillyard/internal/settings"
	"github.com/skillyard-labs/skillyard/internal/tools"
)

// Settings mutators. Each loads the whole document, applies one change, and
// rewrites it; the last concurrent writer wins.

// SetToolEnabled records an explicit enable override for a tool.
func (s *Service) SetToolEnabled(toolID string, enabled bool) error {
	_, err := s.store.Update(func(doc *settings.Document) error {
		tools.SetEnabled(doc, toolID, enabled)
		return nil
	})
	return err
}

// UpsertCustomTool adds or replaces a user-defined tool.
func (s *Service) UpsertCustomTool(input tools.Definition) (settings.CustomTool, error) {
	var saved settings.CustomTool
	_, err := s.store.Update(func(doc *settings.Document) error {
		tool, err := tools.UpsertCustom(doc, input)
		if err != nil {
			return err
		}
		saved = tool
		return nil
	})
	return saved, err
}

// DeleteCustomTool removes a user-defined tool and its enable override.
func (s *Service) DeleteCustomTool(toolID string) error {
	_, err := s.store.Update(func(doc *settings.Document) error {
		tools.DeleteCustom(doc, toolID)
		return nil
	})
	return err
}

// ReorderTools replaces the persisted dashboard order wholesale.
func (s *Service) ReorderTools(order []string) error {
	_, err := s.store.Update(func(doc *settings.Document) error {
		tools.SetOrder(doc, order)
		return nil
	})
	return err
}

// SetGithubToken stores the token used for gist publishing. A blank token
// clears it.
func (s *Service) SetGithubToken(token string) error {
	_, err := s.store.Update(func(doc *settings.Document) error {
		doc.GithubToken = strings.TrimSpace(token)
		return nil
	})
	return err
}

// GithubToken returns the stored token, or "" when none is set.
func (s *Service) GithubToken() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	return doc.GithubToken, nil
}

// SetSkillEditorDefaultMode persists the editor's initial mode.
func (s *Service) SetSkillEditorDefaultMode(mode string) error {
	clean := strings.ToLower(strings.TrimSpace(mode))
	if !settings.ValidMode(clean) {
		return errdefs.Validationf("mode must be either %q or %q", settings.ModeView, settings.ModeEdit)
	}
	_, err := s.store.Update(func(doc *settings.Document) error {
		doc.SkillEditorDefaultMode = clean
		return nil
	})
	return err
}

// RevealInFileManager opens the system file manager at path. The path must
// sit under a sanctioned root like every other read.
func (s *Service) RevealInFileManager(path string) error {
	if err := s.guard(path); err != nil {
		return err
	}
	return platform.Reveal(path)
}

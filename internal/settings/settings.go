package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// StateFile is the document's file name inside the app data directory.
const StateFile = "state.json"

// Editor mode values for SkillEditorDefaultMode.
const (
	ModeView = "view"
	ModeEdit = "edit"
)

// ValidMode reports whether s is an accepted editor mode.
func ValidMode(s string) bool { return s == ModeView || s == ModeEdit }

// CustomTool is a user-defined tool entry stored in the document.
type CustomTool struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ConfigPath string `json:"configPath"`
	SkillsPath string `json:"skillsPath"`
	Cli        bool   `json:"cli"`
}

// Document is the whole persisted state.
type Document struct {
	ToolToggles            map[string]bool `json:"toolToggles"`
	CustomTools            []CustomTool    `json:"customTools"`
	ToolOrder              []string        `json:"toolOrder"`
	GithubToken            string          `json:"githubToken,omitempty"`
	SkillEditorDefaultMode string          `json:"skillEditorDefaultMode"`
}

// DefaultDocument returns the state used before anything is persisted.
func DefaultDocument() *Document {
	return &Document{
		ToolToggles:            map[string]bool{},
		SkillEditorDefaultMode: ModeView,
	}
}

// normalize fills the zero values a hand-edited or legacy document may lack.
func (d *Document) normalize() {
	if d.ToolToggles == nil {
		d.ToolToggles = map[string]bool{}
	}
	if d.SkillEditorDefaultMode == "" {
		d.SkillEditorDefaultMode = ModeView
	}
}

// Store reads and writes the document at a fixed location.
type Store struct {
	path string
}

// NewStore returns a store for the document inside dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, StateFile)}
}

// Path returns the document's file path.
func (s *Store) Path() string { return s.path }

// Load reads the full document, returning defaults when none exists yet.
// The raw bytes are schema-checked before decoding so that a corrupted or
// hand-mangled file fails loudly instead of silently dropping state.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultDocument(), nil
		}
		return nil, errdefs.Iof(err, "reading settings %s", s.path)
	}
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errdefs.Validationf("settings file %s is not valid JSON: %v", s.path, err)
	}
	doc.normalize()
	return doc, nil
}

// Save rewrites the whole document.
func (s *Store) Save(doc *Document) error {
	doc.normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errdefs.Iof(err, "encoding settings")
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errdefs.Iof(err, "creating settings directory")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errdefs.Iof(err, "writing settings %s", s.path)
	}
	return nil
}

// Update loads the document, applies fn, and saves the result. Mutators
// that fail leave the file untouched.
func (s *Store) Update(fn func(*Document) error) (*Document, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/settings"
)

// Tool kinds.
const (
	KindBuiltin = "builtin"
	KindCustom  = "custom"
)

// Definition is an unresolved tool: home-relative paths, no detection state.
type Definition struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	ConfigPath string `yaml:"config_path" json:"configPath"`
	SkillsPath string `yaml:"skills_path" json:"skillsPath"`
	Cli        bool   `yaml:"cli" json:"cli"`
}

// Info is a resolved tool: expanded paths, detection, and effective enable
// state.
type Info struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	ConfigPath string `json:"configPath"`
	SkillsPath string `json:"skillsPath"`
	Detected   bool   `json:"detected"`
	Enabled    bool   `json:"enabled"`
	Cli        bool   `json:"cli"`
}

// ExpandHome resolves a leading "~/" (or bare "~") against the user's home
// directory. Other paths pass through unchanged.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// resolve expands one definition against the settings document. A tool is
// detected when either of its directories exists; the enable override wins
// over detection when present.
func resolve(def Definition, doc *settings.Document, kind string) (Info, error) {
	config, err := ExpandHome(def.ConfigPath)
	if err != nil {
		return Info{}, err
	}
	skillsPath, err := ExpandHome(def.SkillsPath)
	if err != nil {
		return Info{}, err
	}
	detected := pathExists(config) || pathExists(skillsPath)
	enabled := detected
	if override, ok := doc.ToolToggles[def.ID]; ok {
		enabled = override
	}
	return Info{
		ID:         def.ID,
		Name:       def.Name,
		Kind:       kind,
		ConfigPath: config,
		SkillsPath: skillsPath,
		Detected:   detected,
		Enabled:    enabled,
		Cli:        def.Cli,
	}, nil
}

// Resolve builds the full tool list, built-ins then customs, sorted by
// display name.
func Resolve(doc *settings.Document) ([]Info, error) {
	infos := make([]Info, 0, len(Builtins())+len(doc.CustomTools))
	for _, def := range Builtins() {
		info, err := resolve(def, doc, KindBuiltin)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	for _, custom := range doc.CustomTools {
		def := Definition{
			ID:         custom.ID,
			Name:       custom.Name,
			ConfigPath: custom.ConfigPath,
			SkillsPath: custom.SkillsPath,
			Cli:        custom.Cli,
		}
		info, err := resolve(def, doc, KindCustom)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// FindByID resolves all tools and returns the one with the given id.
func FindByID(doc *settings.Document, id string) (Info, error) {
	infos, err := Resolve(doc)
	if err != nil {
		return Info{}, err
	}
	for _, info := range infos {
		if info.ID == id {
			return info, nil
		}
	}
	return Info{}, errdefs.NotFoundf("tool not found: %s", id)
}

// OrderForDisplay reorders tools by the persisted explicit order; tools not
// named keep their alphabetical position after the ordered ones. An empty
// order leaves the list as is.
func OrderForDisplay(infos []Info, order []string) []Info {
	if len(order) == 0 {
		return infos
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	rank := func(info Info) int {
		if p, ok := pos[info.ID]; ok {
			return p
		}
		return len(order)
	}
	out := make([]Info, len(infos))
	copy(out, infos)
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

// SkillsRoots collects the skills directories of the given tools. These are
// the sanctioned roots every guarded path operation checks against.
func SkillsRoots(infos []Info) []string {
	roots := make([]string, 0, len(infos))
	for _, info := range infos {
		roots = append(roots, info.SkillsPath)
	}
	return roots
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

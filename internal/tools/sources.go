package tools

import "sort"

// Source is a curated skill repository suggested to users for imports.
type Source struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RepoURL     string   `json:"repoUrl"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CuratedSources returns the fixed suggestion list, sorted by name.
func CuratedSources() []Source {
	sources := []Source{
		{
			ID:          "cc-plugins",
			Name:        "Claude Code Plugins + Skills",
			RepoURL:     "https://github.com/jeremylongshore/claude-code-plugins-plus-skills",
			Description: "Mixed plugin and skill examples for Claude-style workflows.",
			Tags:        []string{"claude", "skills"},
		},
		{
			ID:          "composio",
			Name:        "Awesome Claude Skills (Composio)",
			RepoURL:     "https://github.com/ComposioHQ/awesome-claude-skills",
			Description: "Curated list of reusable Claude skills.",
			Tags:        []string{"claude", "awesome-list"},
		},
		{
			ID:          "antigravity-awesome",
			Name:        "Antigravity Awesome Skills",
			RepoURL:     "https://github.com/sickn33/antigravity-awesome-skills",
			Description: "Skills tailored for Antigravity environments.",
			Tags:        []string{"antigravity", "skills"},
		},
		{
			ID:          "openclaw-awesome",
			Name:        "Awesome OpenClaw Skills",
			RepoURL:     "https://github.com/VoltAgent/awesome-openclaw-skills",
			Description: "Community source for OpenClaw skill packs.",
			Tags:        []string{"openclaw", "skills"},
		},
		{
			ID:          "superpowers",
			Name:        "Obra Superpowers",
			RepoURL:     "https://github.com/obra/superpowers",
			Description: "Collection of workflow superpowers compatible with agent tools.",
			Tags:        []string{"automation", "productivity"},
		},
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources
}

package skills

// DescriptorName is the file that marks a directory as a skill bundle.
const DescriptorName = "SKILL.md"

// Meta is the displayable metadata extracted from a descriptor.
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Record describes one skill bundle as seen from a tool root.
type Record struct {
	ID           string   `json:"id"` // "<toolID>:<dirName>", unique per tool
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Path         string   `json:"path"` // bundle directory, absolute
	SourceToolID string   `json:"sourceToolId"`
	EnabledFor   []string `json:"enabledForToolIds"`
	UpdatedAt    int64    `json:"updatedAt"` // descriptor mtime, unix seconds
	RepoURL      string   `json:"githubRepoUrl,omitempty"`
	RepoPath     string   `json:"githubSkillPath,omitempty"`
}

// DiscoveredRoot is a directory that looks like a skills installation root.
type DiscoveredRoot struct {
	Path       string `json:"path"`
	SkillCount int    `json:"skillCount"`
}

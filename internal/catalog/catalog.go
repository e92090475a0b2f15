package catalog

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/skillyard-labs/skillyard/internal/config"
	"github.com/skillyard-labs/skillyard/internal/pathguard"
	"github.com/skillyard-labs/skillyard/internal/settings"
	"github.com/skillyard-labs/skillyard/internal/skills"
	"github.com/skillyard-labs/skillyard/internal/tools"
	"github.com/skillyard-labs/skillyard/internal/trash"
	"github.com/skillyard-labs/skillyard/internal/userdata"
)

// scanParallelism bounds how many tool roots are scanned at once.
const scanParallelism = 4

// Service exposes the catalog operations. It holds no catalog state of its
// own: the settings document is reloaded for every operation and the skill
// list is recomputed on every dashboard request.
type Service struct {
	store *settings.Store
	bin   *trash.Bin
}

// New builds a service rooted at the app data directory. The state_dir
// config key relocates the settings document; the trash location follows
// the userdata layout.
func New() (*Service, error) {
	stateDir := config.Get(config.KeyStateDir)
	if stateDir == "" {
		root, err := userdata.GetAppDataRoot()
		if err != nil {
			return nil, err
		}
		stateDir = root
	}
	trashRoot, err := userdata.GetTrashRoot()
	if err != nil {
		return nil, err
	}
	return &Service{
		store: settings.NewStore(stateDir),
		bin:   trash.NewBin(trashRoot),
	}, nil
}

// Store returns the settings store the service mutates.
func (s *Service) Store() *settings.Store { return s.store }

// sanctionedRoots recomputes the skill roots of every live tool. Guarded
// operations call this each time; authorization is never cached.
func (s *Service) sanctionedRoots() ([]string, *settings.Document, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, nil, err
	}
	infos, err := tools.Resolve(doc)
	if err != nil {
		return nil, nil, err
	}
	return tools.SkillsRoots(infos), doc, nil
}

// guard authorizes path against the current skill roots.
func (s *Service) guard(path string) error {
	roots, _, err := s.sanctionedRoots()
	if err != nil {
		return err
	}
	return pathguard.Authorize(path, roots)
}

// Stats summarizes the catalog for the dashboard header.
type Stats struct {
	InstalledSkills int `json:"installedSkills"`
	DetectedTools   int `json:"detectedTools"`
	EnabledTools    int `json:"enabledTools"`
}

// Dashboard is the full catalog view: tools in display order, the merged
// skill list of every enabled tool, curated import sources, and the
// preference values the UI needs up front.
type Dashboard struct {
	Tools                  []tools.Info    `json:"tools"`
	Skills                 []skills.Record `json:"skills"`
	Sources                []tools.Source  `json:"sources"`
	Stats                  Stats           `json:"stats"`
	AppDataDir             string          `json:"appDataDir"`
	HasGithubToken         bool            `json:"hasGithubToken"`
	SkillEditorDefaultMode string          `json:"skillEditorDefaultMode"`
}

// BuildDashboard recomputes the whole catalog view. Enabled tools are
// scanned concurrently; the scan results are merged in display order so the
// first tool the user ranked stays canonical for duplicate names.
func (s *Service) BuildDashboard(ctx context.Context) (*Dashboard, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	infos, err := tools.Resolve(doc)
	if err != nil {
		return nil, err
	}
	ordered := tools.OrderForDisplay(infos, doc.ToolOrder)

	perTool := make([][]skills.Record, len(ordered))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(scanParallelism)
	for i, tool := range ordered {
		if !tool.Enabled {
			continue
		}
		i, tool := i, tool
		g.Go(func() error {
			perTool[i] = skills.Scan(tool.ID, tool.SkillsPath)
			return nil
		})
	}
	// Scan never fails; the group only bounds parallelism.
	_ = g.Wait()

	var raw []skills.Record
	for _, records := range perTool {
		raw = append(raw, records...)
	}
	merged := skills.Merge(raw)

	stats := Stats{InstalledSkills: len(merged)}
	for _, tool := range ordered {
		if tool.Detected {
			stats.DetectedTools++
		}
		if tool.Enabled {
			stats.EnabledTools++
		}
	}

	return &Dashboard{
		Tools:                  ordered,
		Skills:                 merged,
		Sources:                tools.CuratedSources(),
		Stats:                  stats,
		AppDataDir:             filepath.Dir(s.store.Path()),
		HasGithubToken:         doc.GithubToken != "",
		SkillEditorDefaultMode: doc.SkillEditorDefaultMode,
	}, nil
}

// ResolveTools returns the tool list in display order without scanning.
func (s *Service) ResolveTools() ([]tools.Info, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	infos, err := tools.Resolve(doc)
	if err != nil {
		return nil, err
	}
	return tools.OrderForDisplay(infos, doc.ToolOrder), nil
}

// DiscoverImportRoots surfaces candidate skill roots inside an arbitrary
// directory, for previewing what an import would pick up.
func (s *Service) DiscoverImportRoots(path string) []skills.DiscoveredRoot {
	return skills.DiscoverRoots(path)
}

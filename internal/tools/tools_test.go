package tools

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/settings"
)

func TestBuiltinsCatalog(t *testing.T) {
	defs := Builtins()
	if len(defs) != 18 {
		t.Fatalf("Builtins() has %d entries, want 18", len(defs))
	}
	ids := map[string]bool{}
	for _, def := range defs {
		if def.ID == "" || def.Name == "" || def.SkillsPath == "" {
			t.Errorf("incomplete definition: %+v", def)
		}
		if ids[def.ID] {
			t.Errorf("duplicate builtin id %q", def.ID)
		}
		ids[def.ID] = true
	}
	for _, id := range []string{"cursor", "claude-code", "codex", "baidu-comate"} {
		if !ids[id] {
			t.Errorf("builtin %q missing", id)
		}
	}
	if !IsBuiltinID("cursor") || IsBuiltinID("definitely-not-a-tool") {
		t.Error("IsBuiltinID misclassified")
	}
}

func TestResolveDetectionAndOverrides(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	// cursor's skills dir exists: detected. Nothing else does.
	if err := os.MkdirAll(filepath.Join(home, ".cursor", "skills"), 0755); err != nil {
		t.Fatal(err)
	}

	doc := settings.DefaultDocument()
	doc.ToolToggles["codex"] = true    // enabled despite not detected
	doc.ToolToggles["cursor"] = false  // disabled despite detected

	infos, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	byID := map[string]Info{}
	for _, info := range infos {
		byID[info.ID] = info
	}

	cursor := byID["cursor"]
	if !cursor.Detected {
		t.Error("cursor not detected despite existing skills dir")
	}
	if cursor.Enabled {
		t.Error("cursor enabled despite explicit false override")
	}
	if cursor.SkillsPath != filepath.Join(home, ".cursor", "skills") {
		t.Errorf("cursor.SkillsPath = %q", cursor.SkillsPath)
	}

	codex := byID["codex"]
	if codex.Detected {
		t.Error("codex detected with nothing on disk")
	}
	if !codex.Enabled {
		t.Error("codex not enabled despite explicit true override")
	}

	trae := byID["trae"]
	if trae.Detected || trae.Enabled {
		t.Error("trae should be neither detected nor enabled by default")
	}
}

func TestResolveSortsByName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on HOME")
	}
	t.Setenv("HOME", t.TempDir())
	infos, err := Resolve(settings.DefaultDocument())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name }) {
		t.Error("Resolve output not sorted by name")
	}
}

func TestResolveIncludesCustoms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on HOME")
	}
	t.Setenv("HOME", t.TempDir())
	skillsDir := t.TempDir()

	doc := settings.DefaultDocument()
	doc.CustomTools = []settings.CustomTool{{
		ID: "my-editor", Name: "My Editor", ConfigPath: filepath.Join(skillsDir, "absent"), SkillsPath: skillsDir, Cli: true,
	}}

	infos, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var custom *Info
	for i := range infos {
		if infos[i].ID == "my-editor" {
			custom = &infos[i]
		}
	}
	if custom == nil {
		t.Fatal("custom tool missing from Resolve output")
	}
	if custom.Kind != KindCustom {
		t.Errorf("Kind = %q, want %q", custom.Kind, KindCustom)
	}
	if !custom.Detected || !custom.Enabled {
		t.Errorf("custom tool with existing skills dir: detected=%v enabled=%v", custom.Detected, custom.Enabled)
	}
}

func TestFindByID(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on HOME")
	}
	t.Setenv("HOME", t.TempDir())
	doc := settings.DefaultDocument()

	if _, err := FindByID(doc, "cursor"); err != nil {
		t.Errorf("FindByID(cursor) = %v", err)
	}
	_, err := FindByID(doc, "no-such-tool")
	if !errdefs.IsNotFound(err) {
		t.Errorf("FindByID(no-such-tool) = %v, want not-found", err)
	}
}

func TestOrderForDisplay(t *testing.T) {
	infos := []Info{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}

	got := OrderForDisplay(infos, []string{"c", "a"})
	var ids []string
	for _, info := range got {
		ids = append(ids, info.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}

	// Empty order leaves the alphabetical list alone.
	same := OrderForDisplay(infos, nil)
	if same[0].ID != "a" || same[2].ID != "c" {
		t.Errorf("empty order changed the list: %v", same)
	}
	// Input slice is not mutated.
	if infos[0].ID != "a" {
		t.Error("OrderForDisplay mutated its input")
	}
}

func TestUpsertCustom(t *testing.T) {
	doc := settings.DefaultDocument()

	created, err := UpsertCustom(doc, Definition{
		ID: "My Editor!!", Name: "My Editor", ConfigPath: "~/.myeditor", SkillsPath: "~/.myeditor/skills",
	})
	if err != nil {
		t.Fatalf("UpsertCustom: %v", err)
	}
	if created.ID != "my-editor" {
		t.Errorf("ID = %q, want slugified %q", created.ID, "my-editor")
	}
	if len(doc.CustomTools) != 1 {
		t.Fatalf("CustomTools = %+v", doc.CustomTools)
	}

	// Same id replaces in place.
	_, err = UpsertCustom(doc, Definition{
		ID: "my-editor", Name: "Renamed", ConfigPath: "~/.other", SkillsPath: "~/.other/skills",
	})
	if err != nil {
		t.Fatalf("UpsertCustom replace: %v", err)
	}
	if len(doc.CustomTools) != 1 || doc.CustomTools[0].Name != "Renamed" {
		t.Errorf("replace failed: %+v", doc.CustomTools)
	}
}

func TestUpsertCustomRejectsBuiltinCollision(t *testing.T) {
	doc := settings.DefaultDocument()
	_, err := UpsertCustom(doc, Definition{
		ID: "Claude Code", Name: "Imposter", ConfigPath: "~/.x", SkillsPath: "~/.x/skills",
	})
	if !errdefs.IsValidation(err) {
		t.Errorf("UpsertCustom(builtin id) = %v, want validation error", err)
	}
	if len(doc.CustomTools) != 0 {
		t.Error("rejected upsert still mutated the document")
	}
}

func TestDeleteCustom(t *testing.T) {
	doc := settings.DefaultDocument()
	doc.CustomTools = []settings.CustomTool{{ID: "gone", Name: "Gone"}, {ID: "stays", Name: "Stays"}}
	doc.ToolToggles["gone"] = true

	DeleteCustom(doc, "gone")
	if len(doc.CustomTools) != 1 || doc.CustomTools[0].ID != "stays" {
		t.Errorf("CustomTools = %+v", doc.CustomTools)
	}
	if _, ok := doc.ToolToggles["gone"]; ok {
		t.Error("toggle for deleted tool survived")
	}

	// Unknown id: no-op.
	DeleteCustom(doc, "never-existed")
	if len(doc.CustomTools) != 1 {
		t.Error("no-op delete changed the document")
	}
}

func TestCuratedSourcesSorted(t *testing.T) {
	sources := CuratedSources()
	if len(sources) != 5 {
		t.Fatalf("CuratedSources() has %d entries, want 5", len(sources))
	}
	if !sort.SliceIsSorted(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name }) {
		t.Error("sources not sorted by name")
	}
	for _, s := range sources {
		if s.ID == "" || s.RepoURL == "" {
			t.Errorf("incomplete source: %+v", s)
		}
	}
}

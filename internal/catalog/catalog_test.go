package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/tools"
)

// newTestService isolates the whole app layout under a temp dir and
// registers one custom tool whose skills root lives there too.
func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SKILLYARD_HOME", filepath.Join(home, ".skillyard"))
	t.Setenv("SKILLYARD_TRASH", filepath.Join(home, ".skillyard", "trash"))

	svc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	skillsRoot := filepath.Join(home, "toolskills")
	if err := os.MkdirAll(skillsRoot, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpsertCustomTool(tools.Definition{
		ID:         "testtool",
		Name:       "Test Tool",
		SkillsPath: skillsRoot,
	}); err != nil {
		t.Fatalf("UpsertCustomTool: %v", err)
	}
	return svc, skillsRoot
}

const descriptor = `---
name: Commit Writer
description: Writes commit messages.
---
# Commit Writer
Body text.
`

func TestSaveSkillRoundTrip(t *testing.T) {
	svc, skillsRoot := newTestService(t)

	record, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatalf("SaveSkill: %v", err)
	}
	if record.Name != "Commit Writer" {
		t.Errorf("Name = %q", record.Name)
	}
	if filepath.Dir(record.Path) != skillsRoot {
		t.Errorf("bundle %s not under %s", record.Path, skillsRoot)
	}
	if record.ID != "testtool:"+filepath.Base(record.Path) {
		t.Errorf("ID = %q", record.ID)
	}

	// The descriptor written via the service must read back byte-identical.
	got, err := svc.ReadSkillFile(record.Path)
	if err != nil {
		t.Fatalf("ReadSkillFile: %v", err)
	}
	if got != descriptor {
		t.Errorf("descriptor round trip mismatch:\n%q\n%q", got, descriptor)
	}

	// Saving again with the same name must not clobber the first bundle.
	second, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatalf("second SaveSkill: %v", err)
	}
	if second.Path == record.Path {
		t.Errorf("second save reused %s", record.Path)
	}
}

func TestSaveSkillUnknownTool(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.SaveSkill(descriptor, "no-such-tool", ""); !errdefs.IsNotFound(err) {
		t.Errorf("got %v, want not-found", err)
	}
}

func TestBuildDashboard(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.SaveSkill(descriptor, "testtool", ""); err != nil {
		t.Fatal(err)
	}

	dash, err := svc.BuildDashboard(context.Background())
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}
	if dash.Stats.InstalledSkills != 1 {
		t.Errorf("InstalledSkills = %d, want 1", dash.Stats.InstalledSkills)
	}
	if dash.Stats.EnabledTools < 1 {
		t.Errorf("EnabledTools = %d, want >= 1", dash.Stats.EnabledTools)
	}
	if len(dash.Skills) != 1 || dash.Skills[0].Name != "Commit Writer" {
		t.Errorf("Skills = %+v", dash.Skills)
	}
	if dash.SkillEditorDefaultMode != "view" {
		t.Errorf("SkillEditorDefaultMode = %q", dash.SkillEditorDefaultMode)
	}
	if len(dash.Sources) == 0 {
		t.Error("curated sources missing")
	}
}

func TestEntryOperations(t *testing.T) {
	svc, _ := newTestService(t)
	record, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SaveSkillEntry(record.Path, "notes/setup.md", "hello"); err != nil {
		t.Fatalf("SaveSkillEntry: %v", err)
	}
	content, err := svc.ReadSkillEntry(record.Path, "notes/setup.md")
	if err != nil {
		t.Fatalf("ReadSkillEntry: %v", err)
	}
	if content != "hello" {
		t.Errorf("content = %q", content)
	}

	entries, err := svc.ListSkillFiles(record.Path)
	if err != nil {
		t.Fatalf("ListSkillFiles: %v", err)
	}
	var rels []string
	for _, e := range entries {
		rels = append(rels, e.RelativePath)
	}
	want := []string{"SKILL.md", "notes", "notes/setup.md"}
	if strings.Join(rels, ",") != strings.Join(want, ",") {
		t.Errorf("entries = %v, want %v", rels, want)
	}

	if err := svc.RenameSkillEntry(record.Path, "notes/setup.md", "notes/install.md"); err != nil {
		t.Fatalf("RenameSkillEntry: %v", err)
	}
	if err := svc.DeleteSkillEntry(record.Path, "notes/install.md"); err != nil {
		t.Fatalf("DeleteSkillEntry: %v", err)
	}
	if err := svc.DeleteSkillEmptyDir(record.Path, "notes"); err != nil {
		t.Fatalf("DeleteSkillEmptyDir: %v", err)
	}
}

func TestEntryTraversalRejected(t *testing.T) {
	svc, _ := newTestService(t)
	record, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ReadSkillEntry(record.Path, "../outside.md"); !errdefs.IsInvalidPath(err) {
		t.Errorf("traversal read: got %v, want invalid-path", err)
	}
	if err := svc.SaveSkillEntry(record.Path, "/abs/path", "x"); !errdefs.IsInvalidPath(err) {
		t.Errorf("absolute save: got %v, want invalid-path", err)
	}
}

func TestGuardRejectsOutsidePaths(t *testing.T) {
	svc, _ := newTestService(t)
	outside := t.TempDir()
	if _, err := svc.ReadSkillFile(outside); !errdefs.IsInvalidPath(err) {
		t.Errorf("got %v, want invalid-path", err)
	}
	if err := svc.DeleteSkill(outside); !errdefs.IsInvalidPath(err) {
		t.Errorf("got %v, want invalid-path", err)
	}
}

func TestDeleteSkillMovesToTrash(t *testing.T) {
	svc, _ := newTestService(t)
	record, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteSkill(record.Path); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	if _, err := os.Stat(record.Path); !os.IsNotExist(err) {
		t.Errorf("bundle still present at %s", record.Path)
	}

	trashRoot := os.Getenv("SKILLYARD_TRASH")
	entries, err := os.ReadDir(trashRoot)
	if err != nil {
		t.Fatalf("reading trash: %v", err)
	}
	found := false
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), filepath.Base(record.Path)) {
			found = true
		}
	}
	if !found {
		t.Errorf("trashed bundle not found under %s", trashRoot)
	}
}

func TestCopySkillToTool(t *testing.T) {
	svc, _ := newTestService(t)
	record, err := svc.SaveSkill(descriptor, "testtool", "")
	if err != nil {
		t.Fatal(err)
	}

	otherRoot := filepath.Join(os.Getenv("HOME"), "otherskills")
	if _, err := svc.UpsertCustomTool(tools.Definition{
		ID:         "othertool",
		Name:       "Other Tool",
		SkillsPath: otherRoot,
	}); err != nil {
		t.Fatal(err)
	}

	copied, err := svc.CopySkillToTool(record.Path, "othertool")
	if err != nil {
		t.Fatalf("CopySkillToTool: %v", err)
	}
	if copied.SourceToolID != "othertool" {
		t.Errorf("SourceToolID = %q", copied.SourceToolID)
	}
	if filepath.Dir(copied.Path) != otherRoot {
		t.Errorf("copy at %s, want under %s", copied.Path, otherRoot)
	}
	got, err := svc.ReadSkillFile(copied.Path)
	if err != nil {
		t.Fatalf("ReadSkillFile: %v", err)
	}
	if got != descriptor {
		t.Errorf("copied descriptor differs")
	}
}

func TestInstallFromRepoRejectsNonGithub(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.InstallFromRepo(context.Background(), "https://example.com/x.git", "", "testtool")
	if !errdefs.IsValidation(err) {
		t.Errorf("got %v, want validation", err)
	}
}

func TestInstallFromHubRejectsBadSource(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.InstallFromHub(context.Background(), "not-a-ref", "x", "testtool")
	if !errdefs.IsValidation(err) {
		t.Errorf("got %v, want validation", err)
	}
}

func TestSettingsMutators(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.SetToolEnabled("testtool", false); err != nil {
		t.Fatal(err)
	}
	infos, err := svc.ResolveTools()
	if err != nil {
		t.Fatal(err)
	}
	for _, info := range infos {
		if info.ID == "testtool" && info.Enabled {
			t.Error("override did not disable the tool")
		}
	}

	if err := svc.SetSkillEditorDefaultMode("edit"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetSkillEditorDefaultMode("banana"); !errdefs.IsValidation(err) {
		t.Errorf("bad mode: got %v, want validation", err)
	}

	if err := svc.SetGithubToken("  tok  "); err != nil {
		t.Fatal(err)
	}
	token, err := svc.GithubToken()
	if err != nil {
		t.Fatal(err)
	}
	if token != "tok" {
		t.Errorf("token = %q", token)
	}

	if err := svc.ReorderTools([]string{"othertool", "testtool"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteCustomTool("testtool"); err != nil {
		t.Fatal(err)
	}
	infos, err = svc.ResolveTools()
	if err != nil {
		t.Fatal(err)
	}
	for _, info := range infos {
		if info.ID == "testtool" {
			t.Error("custom tool still resolved after delete")
		}
	}
}

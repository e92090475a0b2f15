package skills

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeBundle creates dir with a SKILL.md holding content.
func writeBundle(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DescriptorName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanTwoLevels(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "pdf-tools"), "---\nname: PDF Tools\ndescription: Extract pages\n---\n")
	writeBundle(t, filepath.Join(root, "web-search"), "# Web Search\nQuery the web.\n")
	// Deeper than one level below the root: must not be picked up.
	writeBundle(t, filepath.Join(root, "group", "nested"), "# Nested\n")
	// A plain file next to the bundles is ignored.
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	records := Scan("cursor", root)
	if len(records) != 2 {
		t.Fatalf("Scan returned %d records, want 2: %+v", len(records), records)
	}

	byID := map[string]Record{}
	for _, r := range records {
		byID[r.ID] = r
	}
	pdf, ok := byID["cursor:pdf-tools"]
	if !ok {
		t.Fatal("cursor:pdf-tools not found")
	}
	if pdf.Name != "PDF Tools" || pdf.Description != "Extract pages" {
		t.Errorf("pdf-tools meta = %q / %q", pdf.Name, pdf.Description)
	}
	if pdf.Path != filepath.Join(root, "pdf-tools") {
		t.Errorf("Path = %q", pdf.Path)
	}
	if pdf.SourceToolID != "cursor" {
		t.Errorf("SourceToolID = %q, want %q", pdf.SourceToolID, "cursor")
	}
	if len(pdf.EnabledFor) != 1 || pdf.EnabledFor[0] != "cursor" {
		t.Errorf("EnabledFor = %v, want [cursor]", pdf.EnabledFor)
	}

	web := byID["cursor:web-search"]
	if web.Name != "Web Search" || web.Description != "Query the web." {
		t.Errorf("web-search meta = %q / %q", web.Name, web.Description)
	}
}

func TestScanRootLevelBundle(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "solo-skill")
	writeBundle(t, root, "---\nname: Solo\n---\n")

	records := Scan("codex", root)
	if len(records) != 1 {
		t.Fatalf("Scan returned %d records, want 1", len(records))
	}
	if records[0].ID != "codex:solo-skill" {
		t.Errorf("ID = %q, want %q", records[0].ID, "codex:solo-skill")
	}
	if records[0].Path != root {
		t.Errorf("Path = %q, want %q", records[0].Path, root)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if got := Scan("cursor", filepath.Join(t.TempDir(), "absent")); len(got) != 0 {
		t.Errorf("Scan(missing root) = %v, want empty", got)
	}
}

func TestScanRootIsFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Scan("cursor", file); len(got) != 0 {
		t.Errorf("Scan(file root) = %v, want empty", got)
	}
}

func TestScanFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "bare-bundle"), "")

	records := Scan("goose", root)
	if len(records) != 1 {
		t.Fatalf("Scan returned %d records, want 1", len(records))
	}
	if records[0].Name != "bare-bundle" {
		t.Errorf("Name = %q, want dir name fallback", records[0].Name)
	}
	if records[0].Description != "No description" {
		t.Errorf("Description = %q, want placeholder", records[0].Description)
	}
}

func TestScanUpdatedAtTracksDescriptor(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "aged")
	writeBundle(t, dir, "# Aged\n")
	stamp := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	if err := os.Chtimes(filepath.Join(dir, DescriptorName), stamp, stamp); err != nil {
		t.Fatal(err)
	}

	records := Scan("amp", root)
	if len(records) != 1 {
		t.Fatalf("Scan returned %d records, want 1", len(records))
	}
	if records[0].UpdatedAt != stamp.Unix() {
		t.Errorf("UpdatedAt = %d, want %d", records[0].UpdatedAt, stamp.Unix())
	}
}

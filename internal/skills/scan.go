package skills

import (
	"os"
	"path/filepath"
	"time"
)

// Scan walks a tool's skills root and returns one record per bundle found.
// Only two levels are considered: the root itself when it directly holds a
// descriptor, and each immediate subdirectory that does. A missing or
// non-directory root yields nothing; unreadable descriptors are skipped.
func Scan(toolID, root string) []Record {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var records []Record
	if rec, ok := readBundle(toolID, root); ok {
		records = append(records, rec)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return records
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if rec, ok := readBundle(toolID, filepath.Join(root, entry.Name())); ok {
			records = append(records, rec)
		}
	}
	return records
}

// readBundle builds the record for one bundle directory, or reports false
// when dir has no readable descriptor.
func readBundle(toolID, dir string) (Record, bool) {
	descriptor := filepath.Join(dir, DescriptorName)
	content, err := os.ReadFile(descriptor)
	if err != nil {
		return Record{}, false
	}

	updated := time.Now().Unix()
	if fi, err := os.Stat(descriptor); err == nil {
		updated = fi.ModTime().Unix()
	}

	dirName := filepath.Base(dir)
	meta := ParseMeta(string(content), dirName)
	return Record{
		ID:           toolID + ":" + dirName,
		Name:         meta.Name,
		Description:  meta.Description,
		Path:         dir,
		SourceToolID: toolID,
		EnabledFor:   []string{toolID},
		UpdatedAt:    updated,
	}, true
}

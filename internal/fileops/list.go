package fileops

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// Entry is one file or directory inside a skill bundle, addressed by its
// slash-separated path relative to the bundle root.
type Entry struct {
	RelativePath string `json:"relativePath"`
	IsDir        bool   `json:"isDir"`
}

// ListEntries walks root and returns every non-hidden file and directory
// beneath it, sorted by relative path. Hidden entries are skipped and not
// descended into.
func ListEntries(root string) ([]Entry, error) {
	var out []Entry
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errdefs.Iof(err, "reading %s", dir)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			full := filepath.Join(dir, entry.Name())
			rel, err := filepath.Rel(root, full)
			if err != nil {
				return nil, errdefs.Iof(err, "relativizing %s", full)
			}
			rel = filepath.ToSlash(rel)
			if entry.IsDir() {
				out = append(out, Entry{RelativePath: rel, IsDir: true})
				stack = append(stack, full)
			} else {
				out = append(out, Entry{RelativePath: rel})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelativePath < out[j].RelativePath })
	return out, nil
}

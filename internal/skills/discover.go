package skills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxRootDepth bounds the installation-root walk; maxDirDepth bounds the
// single-bundle searches used by imports.
const (
	maxRootDepth = 6
	maxDirDepth  = 4
)

// skipDirs are dependency and build-output directories that are never
// descended into during root discovery. Matched case-insensitively. A
// bundle sitting directly inside one still counts toward its parent.
var skipDirs = map[string]bool{
	"node_modules": true,
	"target":       true,
	"dist":         true,
	"build":        true,
}

// DiscoverRoots walks start looking for directories that hold skill bundles,
// either directly or in immediate children. Hidden directories and the skip
// list are pruned. Results are deduplicated by path keeping the highest
// count, then ordered best-first: more bundles, then shorter paths, then
// lexicographic.
func DiscoverRoots(start string) []DiscoveredRoot {
	type frame struct {
		dir   string
		depth int
	}
	counts := map[string]int{}
	stack := []frame{{dir: start}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(f.dir)
		if err != nil {
			continue
		}
		direct := hasDescriptor(f.dir)
		childSkills := 0
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			child := filepath.Join(f.dir, name)
			if hasDescriptor(child) {
				childSkills++
			}
			if f.depth < maxRootDepth && !skipDirs[strings.ToLower(name)] {
				stack = append(stack, frame{dir: child, depth: f.depth + 1})
			}
		}
		if direct || childSkills > 0 {
			count := childSkills
			if count == 0 {
				count = 1
			}
			if count > counts[f.dir] {
				counts[f.dir] = count
			}
		}
	}

	roots := make([]DiscoveredRoot, 0, len(counts))
	for path, count := range counts {
		roots = append(roots, DiscoveredRoot{Path: path, SkillCount: count})
	}
	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if a.SkillCount != b.SkillCount {
			return a.SkillCount > b.SkillCount
		}
		if len(a.Path) != len(b.Path) {
			return len(a.Path) < len(b.Path)
		}
		return a.Path < b.Path
	})
	return roots
}

// DiscoverDir finds the first bundle directory under start, searching at
// most four levels deep. Hidden directories are pruned.
func DiscoverDir(start string) (string, bool) {
	return discoverDir(start, 0)
}

func discoverDir(dir string, depth int) (string, bool) {
	if depth > maxDirDepth {
		return "", false
	}
	if hasDescriptor(dir) {
		return dir, true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if found, ok := discoverDir(filepath.Join(dir, entry.Name()), depth+1); ok {
			return found, true
		}
	}
	return "", false
}

// DiscoverDirByName finds a bundle directory whose base name equals name,
// searching at most four levels deep. Hidden directories are pruned.
func DiscoverDirByName(start, name string) (string, bool) {
	return discoverDirByName(start, name, 0)
}

func discoverDirByName(dir, name string, depth int) (string, bool) {
	if depth > maxDirDepth {
		return "", false
	}
	if filepath.Base(dir) == name && hasDescriptor(dir) {
		return dir, true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if found, ok := discoverDirByName(filepath.Join(dir, entry.Name()), name, depth+1); ok {
			return found, true
		}
	}
	return "", false
}

// hasDescriptor reports whether dir directly contains a descriptor file.
func hasDescriptor(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, DescriptorName))
	return err == nil && fi.Mode().IsRegular()
}

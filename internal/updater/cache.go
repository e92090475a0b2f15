package updater

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/userdata"
)

const (
	cacheFileName = "version-check.json"
	// DefaultCacheMaxAge is how long a release lookup stays fresh before a
	// background refresh is scheduled.
	DefaultCacheMaxAge = 24 * time.Hour
)

// VersionCache is the persisted result of the last release lookup. It lets
// the startup banner decide without touching the network.
type VersionCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the cached lookup from cacheDir. A missing file is not an
// error; it means no check has completed yet and returns nil, nil.
func LoadCache(cacheDir string) (*VersionCache, error) {
	raw, err := os.ReadFile(filepath.Join(cacheDir, cacheFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errdefs.Iof(err, "reading version cache")
	}

	var vc VersionCache
	if err := json.Unmarshal(raw, &vc); err != nil {
		return nil, errdefs.Iof(err, "parsing version cache")
	}
	return &vc, nil
}

// SaveCache persists vc under cacheDir, creating the directory if needed.
func SaveCache(cacheDir string, vc *VersionCache) error {
	if err := os.MkdirAll(cacheDir, userdata.DirPermNormal); err != nil {
		return errdefs.Iof(err, "creating cache directory")
	}
	raw, err := json.MarshalIndent(vc, "", "  ")
	if err != nil {
		return errdefs.Iof(err, "encoding version cache")
	}
	if err := os.WriteFile(filepath.Join(cacheDir, cacheFileName), raw, userdata.FilePermNormal); err != nil {
		return errdefs.Iof(err, "writing version cache")
	}
	return nil
}

// IsCacheStale reports whether vc is absent or older than maxAge.
func IsCacheStale(vc *VersionCache, maxAge time.Duration) bool {
	return vc == nil || time.Since(vc.CheckedAt) > maxAge
}

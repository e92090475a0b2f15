package updater

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// CompareVersions orders two release tags semver-wise: -1 when current is
// behind latest, 0 when equal, 1 when ahead. Both sides tolerate a leading
// "v".
func CompareVersions(current, latest string) (int, error) {
	cur, err := parseTag(current)
	if err != nil {
		return 0, err
	}
	lat, err := parseTag(latest)
	if err != nil {
		return 0, err
	}
	return cur.Compare(lat), nil
}

// IsUpdateAvailable reports whether latest is strictly newer than current.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func parseTag(tag string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, errdefs.Validationf("release tag %q is not a version: %v", tag, err)
	}
	return v, nil
}

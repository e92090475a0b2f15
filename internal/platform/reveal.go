package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// Reveal opens the system file manager showing path. On macOS and Windows
// the entry itself is selected; on Linux the enclosing directory is opened,
// since xdg-open has no selection syntax. The viewer process is started and
// not waited on.
func Reveal(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errdefs.NotFoundf("path not found: %s", path)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", "-R", path)
	case "windows":
		cmd = exec.Command("explorer", "/select,"+path)
	default:
		cmd = exec.Command("xdg-open", filepath.Dir(path))
	}
	if err := cmd.Start(); err != nil {
		return errdefs.Iof(err, "opening file manager for %s", path)
	}
	return nil
}

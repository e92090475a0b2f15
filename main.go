package main

import (
	"fmt"
	"os"

	"github.com/skillyard-labs/skillyard/internal/cli"
	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto distinct exit codes so scripts can
// tell a bad argument from a missing skill or an offline hub.
func exitCode(err error) int {
	switch errdefs.KindOf(err) {
	case errdefs.KindValidation:
		return 2
	case errdefs.KindIo:
		return 3
	case errdefs.KindNotFound:
		return 4
	case errdefs.KindNetwork, errdefs.KindVcs:
		return 5
	case errdefs.KindInvalidPath:
		return 6
	default:
		return 1
	}
}

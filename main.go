package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ecc-labs/ecc/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// run executes the CLI and reports fatal errors on stderr. The command tree
// is built with SilenceErrors, so this is the single place errors surface.
func run(stderr io.Writer) int {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Stderr))
}

// Command insure quotes vehicle insurance from the command line or over HTTP.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	root, appFn := newRootCmd()
	if err := root.Execute(); err != nil {
		reportFailure(appFn(), os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure logs err through the app logger. When the command failed
// before config and logging were set up there is no logger yet, so it falls
// back to writing the error to stderr.
func reportFailure(a *app, stderr io.Writer, err error) {
	if a == nil || a.logger == nil {
		fmt.Fprintln(stderr, "error:", err)
		return
	}
	a.logger.Error("command failed", zap.Error(err))
	_ = a.logger.Sync()
}

// Package main provides the CLI entrypoint for accessor-generator.
//
// accessor-generator works on binding manifests describing the global
// variables of a native library:
//   - check validates a manifest and reports its diagnostics
//   - trace prints the accessor generated for every variable
//   - probe binds a manifest to a scratch region and reads it back
package main

import (
	"fmt"
	"os"

	"accessor-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

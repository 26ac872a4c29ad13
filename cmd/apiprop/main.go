// Package main is the entry point for the apiprop CLI.
//
// apiprop turns property catalogs into OpenAPI component schemas or a JSON
// Schema bundle, and can author a single property interactively.
//
//	apiprop build --catalog ./catalog --format yaml
//	apiprop wizard
package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-apiprop/cmd/apiprop/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

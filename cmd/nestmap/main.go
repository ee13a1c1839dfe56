// Package main provides the CLI entrypoint for nestmap.
//
// nestmap applies deep path operations to JSON and YAML documents:
//   - get/set/del at dotted paths
//   - group: index an array of records by field values
package main

import (
	"fmt"
	"os"

	"nestmap/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

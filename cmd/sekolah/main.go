// Package main is the entry point for the sekolah CLI binary.
package main

import (
	"os"

	cli "sekolah-cli/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}

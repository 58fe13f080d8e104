// Package main is the entry point for the WordAhead CLI.
package main

import (
	"os"

	"github.com/f3rmion/wordahead/cmd/wordahead/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

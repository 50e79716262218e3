package main

import (
	"os"

	"github.com/tmplkit/tmplkit/cmd/tmplcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

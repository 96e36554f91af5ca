// Package main is the CLI command itself.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/mlvideo/automl-cli/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

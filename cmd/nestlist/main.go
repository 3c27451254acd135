// Package main is the entry point for the nestlist CLI application.
package main

import "github.com/dbmrq/nestlist/cmd/nestlist/cmd"

// Version information, set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}

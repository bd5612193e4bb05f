// Package main is the entry point for the boomictl CLI.
// boomictl is the terminal tool for launching and monitoring Boomi
// AtomSphere process executions.
package main

import (
	"boomictl/cmd/boomictl/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides a CLI for browsing the roster file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/preston-bernstein/roster-service/internal/cmd/rosterctl"
)

func main() {
	cfg, err := rosterctl.ParseConfig(flag.CommandLine, os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rosterctl.Run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

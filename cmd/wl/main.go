package main

import (
	"fmt"
	"os"

	"worklog/internal/cli"
	"worklog/internal/config"
)

func main() {
	// Load configuration: defaults, then config file, then environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The root command builds the store and API once flag overrides are known
	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

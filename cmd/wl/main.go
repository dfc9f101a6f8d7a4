package main

import (
	"context"
	"fmt"
	"os"

	"worklog/internal/api"
	"worklog/internal/cli"
	"worklog/internal/config"
)

func main() {
	// Load configuration: defaults, optional YAML file, environment.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the persistence collaborator selected by the configuration.
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	apiInstance := api.NewWithOptions(repo, api.Options{
		StandardDay:          cfg.StandardDay(),
		ProjectCodeMaxLength: cfg.Policy.ProjectCodeMaxLength,
		DescriptionMaxLength: cfg.Policy.DescriptionMaxLength,
	})

	ctx := context.Background()
	if err := apiInstance.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stored entries: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(cli.HandleCommandError(err))
	}
}

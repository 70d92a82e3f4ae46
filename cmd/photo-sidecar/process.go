// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photo-sidecar/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process [images...]",
	Short: "Create sidecar notes for the given JPEG images",
	Long: `Process extracts metadata from each image and writes its sidecar note
next to it, same base name with the note extension. Images that already
have a sidecar are skipped.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().Bool("geocode", false, "resolve GPS coordinates to place names")
	processCmd.Flags().String("stage", "", "static stage tag to inject into every note")
	processCmd.Flags().String("manifest", "", "SQLite manifest database to log created notes")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more JPEG image paths")
	}

	cfg := pipelineConfig()
	if on, _ := cmd.Flags().GetBool("geocode"); on {
		cfg.Geocode.Enabled = true
	}
	if stage, _ := cmd.Flags().GetString("stage"); stage != "" {
		cfg.Note.Stage = stage
	}
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		cfg.Manifest.Path = path
	}

	deps, store, err := buildDeps(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	result := pipeline.ProcessBatch(cmd.Context(), args, deps, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d image(s) failed processing", result.Failed)
	}
	return nil
}

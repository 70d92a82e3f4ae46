// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photo-sidecar/internal/pipeline"
	"github.com/pdiddy/photo-sidecar/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a folder and create sidecar notes for new JPEG images",
	Long: `Watch monitors a directory subtree for newly created JPEG files and runs
the sidecar pipeline on each one after a short settle delay. Runs until
interrupted. Images dropped concurrently are processed concurrently; each
run is independent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("geocode", false, "resolve GPS coordinates to place names")
	watchCmd.Flags().Duration("settle-delay", 0, "wait after a create event before reading the file (default 500ms)")
	watchCmd.Flags().String("manifest", "", "SQLite manifest database to log created notes")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if len(args) > 0 {
		cfg.Watch.Dir = args[0]
	}
	if cfg.Watch.Dir == "" {
		return fmt.Errorf("provide a directory to watch (argument or watch.dir config)")
	}
	if on, _ := cmd.Flags().GetBool("geocode"); on {
		cfg.Geocode.Enabled = true
	}
	if d, _ := cmd.Flags().GetDuration("settle-delay"); d > 0 {
		cfg.Watch.SettleDelay = d
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	process := func(ctx context.Context, imagePath string) {
		if _, err := pipeline.Process(ctx, imagePath, deps, cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", imagePath, err)
		}
	}

	return watch.Run(ctx, cfg.Watch, process, os.Stdout)
}

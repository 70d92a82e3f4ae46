// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photo-sidecar/internal/manifest"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently created sidecar notes from the manifest",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to list")
	historyCmd.Flags().String("manifest", "", "SQLite manifest database")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		cfg.Manifest.Path = path
	}
	if cfg.Manifest.Path == "" {
		return fmt.Errorf("no manifest configured (set manifest.path or --manifest)")
	}

	store, err := manifest.Open(cfg.Manifest.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No sidecar notes recorded.")
		return nil
	}
	for _, e := range entries {
		camera := e.CameraModel
		if camera == "" {
			camera = "unknown camera"
		}
		fmt.Printf("%s  %s (%s)\n", e.CreatedAt.Local().Format(time.DateTime), e.NotePath, camera)
	}
	return nil
}

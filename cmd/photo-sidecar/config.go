// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/photo-sidecar/internal/exifdata"
	"github.com/pdiddy/photo-sidecar/internal/geocode"
	"github.com/pdiddy/photo-sidecar/internal/manifest"
	"github.com/pdiddy/photo-sidecar/internal/pipeline"
	"github.com/pdiddy/photo-sidecar/pkg/types"
)

const (
	defaultUserAgent   = "photo-sidecar/0.1"
	defaultSettleDelay = 500 * time.Millisecond
)

func init() {
	viper.SetDefault("geocode.enabled", false)
	viper.SetDefault("geocode.base_url", geocode.DefaultBaseURL)
	viper.SetDefault("geocode.zoom", 16)
	viper.SetDefault("geocode.timeout", time.Duration(0))
	viper.SetDefault("geocode.user_agent", defaultUserAgent)
	viper.SetDefault("note.extension", pipeline.DefaultExtension)
	viper.SetDefault("note.stage", "")
	viper.SetDefault("watch.settle_delay", defaultSettleDelay)
	viper.SetDefault("manifest.path", "")
}

// pipelineConfig assembles the pipeline configuration from the loaded
// config file and environment.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Geocode: types.GeocodeConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("geocode.timeout"),
				UserAgent: viper.GetString("geocode.user_agent"),
			},
			Enabled: viper.GetBool("geocode.enabled"),
			BaseURL: viper.GetString("geocode.base_url"),
			Zoom:    viper.GetInt("geocode.zoom"),
		},
		Note: types.NoteConfig{
			Extension: viper.GetString("note.extension"),
			Stage:     viper.GetString("note.stage"),
		},
		Watch: types.WatchConfig{
			Dir:         viper.GetString("watch.dir"),
			SettleDelay: viper.GetDuration("watch.settle_delay"),
		},
		Manifest: types.ManifestConfig{
			Path: viper.GetString("manifest.path"),
		},
	}
}

// buildDeps wires the pipeline collaborators for the loaded
// configuration. The caller must Close the returned manifest store when
// it is non-nil.
func buildDeps(cfg types.PipelineConfig) (pipeline.Deps, *manifest.Store, error) {
	deps := pipeline.Deps{
		Storage: pipeline.OSStorage{},
		Decode:  exifdata.Decode,
	}
	if cfg.Geocode.Enabled {
		deps.Geocoder = geocode.NewClient(cfg.Geocode)
	}

	var store *manifest.Store
	if cfg.Manifest.Path != "" {
		var err error
		store, err = manifest.Open(cfg.Manifest.Path)
		if err != nil {
			return pipeline.Deps{}, nil, err
		}
		deps.Recorder = store
	}
	return deps, store, nil
}

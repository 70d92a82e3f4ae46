// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout; the
	// reverse-geocoding lookup is the only network call in the pipeline
	// and a slow lookup only delays its own note, so the default leaves
	// it unbounded.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "photo-sidecar/0.1"). Nominatim's usage policy requires an
	// identifying agent.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GeocodeConfig holds settings for reverse-geocoding GPS coordinates.
type GeocodeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled controls whether the place-resolution step runs at all.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// BaseURL is the Nominatim-compatible endpoint base
	// (default "https://nominatim.openstreetmap.org").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Zoom is the Nominatim zoom level for reverse lookups (default 16,
	// roughly street/neighbourhood granularity).
	Zoom int `json:"zoom" yaml:"zoom"`
}

// NoteConfig holds settings for sidecar-note synthesis. The date format,
// header key set, and caption rendering style form one coherent document
// variant; they are fixed at build time rather than configurable so that
// every note in a library looks the same.
type NoteConfig struct {
	// Extension is the sidecar file extension including the dot
	// (default ".md").
	Extension string `json:"extension" yaml:"extension"`

	// Stage, when non-empty, is injected into every record as a static
	// workflow tag. Empty (the default) omits the field.
	Stage string `json:"stage,omitempty" yaml:"stage,omitempty"`
}

// WatchConfig holds settings for the filesystem trigger.
type WatchConfig struct {
	// Dir is the directory subtree to watch for new images.
	Dir string `json:"dir" yaml:"dir"`

	// SettleDelay is how long to wait after a create event before
	// reading the file, so a partially-written image is not processed
	// (default 500ms).
	SettleDelay time.Duration `json:"settle_delay" yaml:"settle_delay"`
}

// ManifestConfig holds settings for the optional created-notes log.
type ManifestConfig struct {
	// Path is the SQLite database file. Empty disables the manifest.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// PipelineConfig groups all component configurations for one pipeline run.
type PipelineConfig struct {
	Geocode  GeocodeConfig  `json:"geocode" yaml:"geocode"`
	Note     NoteConfig     `json:"note" yaml:"note"`
	Watch    WatchConfig    `json:"watch" yaml:"watch"`
	Manifest ManifestConfig `json:"manifest" yaml:"manifest"`
}

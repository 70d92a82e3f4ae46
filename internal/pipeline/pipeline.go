// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences metadata extraction and sidecar-note
// creation for one image: derive the sidecar path, refuse to touch an
// image that already has one, read and decode the bytes, resolve the
// caption, normalize the metadata (with optional place resolution), and
// write the rendered note.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/photo-sidecar/internal/caption"
	"github.com/pdiddy/photo-sidecar/internal/geocode"
	"github.com/pdiddy/photo-sidecar/internal/normalize"
	"github.com/pdiddy/photo-sidecar/internal/note"
	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// DefaultExtension is the sidecar file extension used when none is
// configured.
const DefaultExtension = ".md"

// Decoder turns raw image bytes into a tag tree.
type Decoder func(data []byte) (*types.TagTree, error)

// Recorder logs a created sidecar note. Implementations must tolerate
// being called from concurrent pipeline runs.
type Recorder interface {
	RecordNote(ctx context.Context, imagePath, notePath string, rec *types.Record) error
}

// Deps holds the collaborators for one pipeline run. Geocoder and
// Recorder are optional; nil disables the corresponding step.
type Deps struct {
	Storage  Storage
	Decode   Decoder
	Geocoder geocode.Resolver
	Recorder Recorder
}

// Result describes the outcome of one pipeline run.
type Result struct {
	ImagePath string
	NotePath  string

	// Skipped is true when the sidecar already existed and nothing was
	// written.
	Skipped bool
}

// BatchResult summarizes a multi-image run.
type BatchResult struct {
	Created int
	Skipped int
	Failed  int
}

// Total returns the total number of images processed.
func (r BatchResult) Total() int {
	return r.Created + r.Skipped + r.Failed
}

// HasFailures reports whether any image failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// IsJPEG reports whether path has a JPEG extension.
func IsJPEG(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

// SidecarPath derives the note path for an image by replacing its JPEG
// extension with ext, keeping directory and base name.
func SidecarPath(imagePath, ext string) (string, error) {
	if !IsJPEG(imagePath) {
		return "", fmt.Errorf("%s is not a JPEG image", imagePath)
	}
	if ext == "" {
		ext = DefaultExtension
	}
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ext, nil
}

// Process runs the whole pipeline for one image, writing status lines to
// w. An unreadable or undecodable image is a fatal error and writes
// nothing; a failed place lookup only costs the place field.
//
// The existence check happens once, up front, with no re-check before
// the final write: two concurrent runs for the same image can race. The
// trigger model is a single user dropping files into a folder, so the
// race is documented rather than locked.
func Process(ctx context.Context, imagePath string, deps Deps, cfg types.PipelineConfig, w io.Writer) (Result, error) {
	notePath, err := SidecarPath(imagePath, cfg.Note.Extension)
	if err != nil {
		return Result{ImagePath: imagePath}, err
	}
	res := Result{ImagePath: imagePath, NotePath: notePath}

	if deps.Storage.Exists(notePath) {
		fmt.Fprintf(w, "skipped: %s (sidecar already exists)\n", notePath)
		res.Skipped = true
		return res, nil
	}

	data, err := deps.Storage.ReadFile(imagePath)
	if err != nil {
		return res, fmt.Errorf("reading image: %w", err)
	}

	tree, err := deps.Decode(data)
	if err != nil {
		return res, fmt.Errorf("decoding metadata: %w", err)
	}

	capText := caption.Resolve(tree)

	base := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	rec := normalize.Normalize(tree, base, cfg.Note)

	if rec.HasGPS() && deps.Geocoder != nil {
		resolvePlace(ctx, deps.Geocoder, &rec, imagePath, w)
	}

	content := note.Render(&rec, capText, filepath.Base(imagePath))
	if err := deps.Storage.WriteFile(notePath, []byte(content)); err != nil {
		return res, fmt.Errorf("writing sidecar note: %w", err)
	}

	if deps.Recorder != nil {
		if err := deps.Recorder.RecordNote(ctx, imagePath, notePath, &rec); err != nil {
			fmt.Fprintf(w, "warning: recording %s in manifest failed: %v\n", notePath, err)
		}
	}

	fmt.Fprintf(w, "created: %s\n", notePath)
	return res, nil
}

// resolvePlace runs the reverse-geocoding sub-step. Failures are
// isolated: they produce a warning line and an omitted place field,
// never a pipeline abort.
func resolvePlace(ctx context.Context, resolver geocode.Resolver, rec *types.Record, imagePath string, w io.Writer) {
	place, err := resolver.Reverse(ctx, *rec.GPSLatitude, *rec.GPSLongitude)
	if err != nil {
		fmt.Fprintf(w, "warning: place lookup failed for %s: %v\n", filepath.Base(imagePath), err)
		return
	}
	if place != "" {
		rec.Place = &place
	}
}

// ProcessBatch runs the pipeline over multiple images, printing per-item
// status and a summary. It continues after individual failures.
func ProcessBatch(ctx context.Context, imagePaths []string, deps Deps, cfg types.PipelineConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range imagePaths {
		res, err := Process(ctx, path, deps, cfg, w)
		switch {
		case err != nil:
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			result.Failed++
		case res.Skipped:
			result.Skipped++
		default:
			result.Created++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d created, %d skipped, %d failed (total: %d)\n",
		result.Created, result.Skipped, result.Failed, result.Total())
	return result
}

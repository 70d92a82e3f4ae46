// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps a decoded tag tree into the canonical flat
// metadata record. Every rule is independently optional: a missing or
// malformed source field yields an omitted record field, never an error.
package normalize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// Static tags injected on every record.
const (
	recordType = "image"
	recordIcon = "🖼️"
)

// rule copies one field (or one coherent group of fields) from the tag
// tree into the record. Rules run in declaration order and are
// independent of each other.
type rule func(tree *types.TagTree, rec *types.Record)

var rules = []rule{
	dateRule,
	cameraRule,
	filePropsRule,
	descriptionRule,
	gpsRule,
	keywordRule,
}

// Normalize builds the canonical record for one image. baseName is the
// image's base filename without extension.
func Normalize(tree *types.TagTree, baseName string, cfg types.NoteConfig) types.Record {
	rec := types.Record{
		Title: baseName,
		Type:  recordType,
		Icon:  recordIcon,
	}
	if cfg.Stage != "" {
		stage := cfg.Stage
		rec.Stage = &stage
	}
	for _, r := range rules {
		r(tree, &rec)
	}
	return rec
}

// exifDateShape matches the fixed EXIF date prefix "YYYY:MM:DD".
var exifDateShape = regexp.MustCompile(`^\d{4}:\d{2}:\d{2}`)

// rewriteDate converts the date portion of an EXIF timestamp from
// colon-separated to hyphen-separated, keeping any time-of-day suffix:
// "2023:05:10 14:30:00" becomes "2023-05-10 14:30:00". Input that does
// not have the EXIF lexical shape is rejected.
func rewriteDate(v string) (string, bool) {
	if !exifDateShape.MatchString(v) {
		return "", false
	}
	return strings.ReplaceAll(v[:10], ":", "-") + v[10:], true
}

func dateRule(tree *types.TagTree, rec *types.Record) {
	if tree.EXIF.DateTimeOriginal != nil {
		if d, ok := rewriteDate(*tree.EXIF.DateTimeOriginal); ok {
			rec.CreationDate = &d
		}
	}
	if tree.EXIF.DateTime != nil {
		if d, ok := rewriteDate(*tree.EXIF.DateTime); ok {
			rec.ModifiedDate = &d
		}
	}
}

func cameraRule(tree *types.TagTree, rec *types.Record) {
	rec.CameraModel = copyString(tree.EXIF.Model)
}

func filePropsRule(tree *types.TagTree, rec *types.Record) {
	rec.FileType = copyString(tree.File.FileType)
	rec.ImageHeight = copyString(tree.File.ImageHeight)
	rec.ImageWidth = copyString(tree.File.ImageWidth)
}

// descriptionRule is the one field that normalizes absence to the empty
// string instead of omission: the caption-rendering path treats the
// description as always-present text.
func descriptionRule(tree *types.TagTree, rec *types.Record) {
	if tree.EXIF.ImageDescription != nil {
		rec.Description = *tree.EXIF.ImageDescription
	}
}

// gpsRule emits coordinates only as a complete pair; a lone latitude or
// longitude is dropped entirely.
func gpsRule(tree *types.TagTree, rec *types.Record) {
	if tree.GPS.Latitude == nil || tree.GPS.Longitude == nil {
		return
	}
	lat := *tree.GPS.Latitude
	lon := *tree.GPS.Longitude
	rec.GPSLatitude = &lat
	rec.GPSLongitude = &lon
}

// keywordRule accepts the subject field in either of its source shapes:
// an ordered list (copied as-is, duplicates and order preserved) or a
// single comma-delimited string (split, pieces trimmed, empties dropped).
// XMP subjects win over IPTC keywords when both are present.
func keywordRule(tree *types.TagTree, rec *types.Record) {
	switch {
	case len(tree.XMP.Subject) > 0:
		rec.Keywords = append([]string(nil), tree.XMP.Subject...)
	case tree.XMP.SubjectText != nil:
		rec.Keywords = splitKeywords(*tree.XMP.SubjectText)
	case len(tree.IPTC.Keywords) > 0:
		rec.Keywords = append([]string(nil), tree.IPTC.Keywords...)
	}
}

func splitKeywords(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

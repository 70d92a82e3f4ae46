// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note renders the canonical metadata record into sidecar-note
// text: a delimited header block of strictly ordered key/value lines
// followed by a Markdown body.
package note

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

const headerDelimiter = "---"

// headerField binds one header key to its record accessor. The table
// fixes both the key set and the emission order; the record's own field
// order never leaks into the document.
type headerField struct {
	key   string
	value func(rec *types.Record) (any, bool)
}

var headerFields = []headerField{
	{"creation_date", optString(func(r *types.Record) *string { return r.CreationDate })},
	{"modified_date", optString(func(r *types.Record) *string { return r.ModifiedDate })},
	{"type", func(r *types.Record) (any, bool) { return r.Type, true }},
	{"icon", func(r *types.Record) (any, bool) { return r.Icon, true }},
	{"file_type", optString(func(r *types.Record) *string { return r.FileType })},
	{"image_height", optString(func(r *types.Record) *string { return r.ImageHeight })},
	{"image_width", optString(func(r *types.Record) *string { return r.ImageWidth })},
	{"camera_model", optString(func(r *types.Record) *string { return r.CameraModel })},
	{"gps_latitude", optFloat(func(r *types.Record) *float64 { return r.GPSLatitude })},
	{"gps_longitude", optFloat(func(r *types.Record) *float64 { return r.GPSLongitude })},
	{"place", optString(func(r *types.Record) *string { return r.Place })},
	{"image_description", func(r *types.Record) (any, bool) { return r.Description, true }},
	{"tags", func(r *types.Record) (any, bool) { return r.Keywords, len(r.Keywords) > 0 }},
	{"stage", optString(func(r *types.Record) *string { return r.Stage })},
}

// Render produces the full sidecar document for one image.
// imageFileName is the raw file name (with extension) used for the image
// link and embed. The caption is inserted verbatim; callers own keeping
// it free of Markdown that would corrupt the note.
func Render(rec *types.Record, caption, imageFileName string) string {
	var b strings.Builder
	writeHeader(&b, rec, imageFileName)
	writeBody(&b, rec, caption, imageFileName)
	return b.String()
}

func writeHeader(b *strings.Builder, rec *types.Record, imageFileName string) {
	b.WriteString(headerDelimiter + "\n")

	// The image link line is static and always first, outside the
	// ordered-key table.
	fmt.Fprintf(b, "image: %s\n", formatValue("[["+imageFileName+"]]"))

	for _, f := range headerFields {
		v, ok := f.value(rec)
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%s: %s\n", f.key, formatValue(v))
	}
	b.WriteString(headerDelimiter + "\n")
}

func writeBody(b *strings.Builder, rec *types.Record, caption, imageFileName string) {
	b.WriteString("\n")
	fmt.Fprintf(b, "<div style=\"text-align: center;\"><h1>%s</h1></div>\n\n", rec.Title)
	fmt.Fprintf(b, "![[%s]]\n\n", imageFileName)

	if caption != "" {
		b.WriteString("> [!NOTE] Comment\n")
		b.WriteString("> " + strings.ReplaceAll(caption, "\n", "\n> ") + "\n\n")
	}

	b.WriteString(headerDelimiter + "\n\n")
	b.WriteString("## Details\n")
	if rec.CameraModel != nil {
		fmt.Fprintf(b, "- **Camera**: %s\n", *rec.CameraModel)
	}
	if rec.CreationDate != nil {
		fmt.Fprintf(b, "- **Created**: %s\n", *rec.CreationDate)
	}
	if rec.ImageWidth != nil && rec.ImageHeight != nil {
		fmt.Fprintf(b, "- **Dimensions**: %s x %s\n", *rec.ImageWidth, *rec.ImageHeight)
	}
}

// formatValue renders one header value: strings are double-quoted with
// embedded quotes escaped, string lists become a bracketed inline list,
// and everything else uses its natural textual form.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return `"` + strings.ReplaceAll(t, `"`, `\"`) + `"`
	case []string:
		return "[" + strings.Join(t, ", ") + "]"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func optString(get func(*types.Record) *string) func(*types.Record) (any, bool) {
	return func(r *types.Record) (any, bool) {
		if p := get(r); p != nil {
			return *p, true
		}
		return nil, false
	}
}

func optFloat(get func(*types.Record) *float64) func(*types.Record) (any, bool) {
	return func(r *types.Record) (any, bool) {
		if p := get(r); p != nil {
			return *p, true
		}
		return nil, false
	}
}

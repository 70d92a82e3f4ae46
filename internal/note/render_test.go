// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func fullRecord() types.Record {
	return types.Record{
		Title:        "IMG_0001",
		Type:         "image",
		Icon:         "🖼️",
		CreationDate: str("2023-05-10 14:30:00"),
		ModifiedDate: str("2023-05-11 09:00:00"),
		CameraModel:  str("Canon EOS 90D"),
		FileType:     str("jpeg"),
		ImageHeight:  str("1080"),
		ImageWidth:   str("1920"),
		Description:  "a shot",
		GPSLatitude:  num(48.8566),
		GPSLongitude: num(2.3522),
		Place:        str("Paris"),
		Keywords:     []string{"sunset", "bay"},
		Stage:        str("inbox"),
	}
}

// headerLines extracts the lines between the opening and closing
// delimiters.
func headerLines(t *testing.T, doc string) []string {
	t.Helper()
	lines := strings.Split(doc, "\n")
	if lines[0] != "---" {
		t.Fatalf("document does not open with delimiter: %q", lines[0])
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == "---" {
			return lines[1:i]
		}
	}
	t.Fatal("no closing header delimiter")
	return nil
}

func TestRenderHeaderOrder(t *testing.T) {
	rec := fullRecord()
	doc := Render(&rec, "a caption", "IMG_0001.jpg")

	lines := headerLines(t, doc)
	wantKeys := []string{
		"image",
		"creation_date", "modified_date", "type", "icon", "file_type",
		"image_height", "image_width", "camera_model", "gps_latitude",
		"gps_longitude", "place", "image_description", "tags", "stage",
	}
	if len(lines) != len(wantKeys) {
		t.Fatalf("got %d header lines, want %d:\n%s", len(lines), len(wantKeys), strings.Join(lines, "\n"))
	}
	for i, want := range wantKeys {
		key := strings.SplitN(lines[i], ":", 2)[0]
		if key != want {
			t.Errorf("header line %d key = %q, want %q", i, key, want)
		}
	}
}

func TestRenderHeaderParsesAsYAML(t *testing.T) {
	rec := fullRecord()
	doc := Render(&rec, "", "IMG_0001.jpg")

	header := strings.Join(headerLines(t, doc), "\n")
	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(header), &parsed); err != nil {
		t.Fatalf("header is not valid YAML: %v", err)
	}

	if got := parsed["image"]; got != "[[IMG_0001.jpg]]" {
		t.Errorf("image = %v", got)
	}
	if got := parsed["camera_model"]; got != "Canon EOS 90D" {
		t.Errorf("camera_model = %v", got)
	}
	if got := parsed["creation_date"]; got != "2023-05-10 14:30:00" {
		t.Errorf("creation_date = %v", got)
	}
	if got := parsed["gps_latitude"]; got != 48.8566 {
		t.Errorf("gps_latitude = %v", got)
	}
	tags, ok := parsed["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "sunset" || tags[1] != "bay" {
		t.Errorf("tags = %v", parsed["tags"])
	}
}

func TestRenderOmitsAbsentFields(t *testing.T) {
	rec := types.Record{Title: "img", Type: "image", Icon: "🖼️"}
	doc := Render(&rec, "", "img.jpg")

	header := strings.Join(headerLines(t, doc), "\n")
	for _, absent := range []string{"creation_date", "modified_date", "camera_model", "gps_latitude", "gps_longitude", "place", "tags", "stage", "file_type"} {
		if strings.Contains(header, absent+":") {
			t.Errorf("header contains %q line for an absent field:\n%s", absent, header)
		}
	}
	// The description is always emitted, empty or not.
	if !strings.Contains(header, `image_description: ""`) {
		t.Errorf("header lacks empty image_description line:\n%s", header)
	}
}

func TestRenderQuoteEscaping(t *testing.T) {
	rec := types.Record{
		Title:       "img",
		Type:        "image",
		Icon:        "🖼️",
		CameraModel: str(`the "best" camera`),
	}
	doc := Render(&rec, "", "img.jpg")

	want := `camera_model: "the \"best\" camera"`
	if !strings.Contains(doc, want) {
		t.Errorf("document lacks escaped line %q", want)
	}
}

func TestRenderBodyWithCaption(t *testing.T) {
	rec := fullRecord()
	doc := Render(&rec, "line one\nline two", "IMG_0001.jpg")

	for _, want := range []string{
		"<div style=\"text-align: center;\"><h1>IMG_0001</h1></div>",
		"![[IMG_0001.jpg]]",
		"> [!NOTE] Comment\n> line one\n> line two",
		"## Details",
		"- **Camera**: Canon EOS 90D",
		"- **Created**: 2023-05-10 14:30:00",
		"- **Dimensions**: 1920 x 1080",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %q:\n%s", want, doc)
		}
	}
}

func TestRenderBodyWithoutCaption(t *testing.T) {
	rec := fullRecord()
	doc := Render(&rec, "", "IMG_0001.jpg")

	if strings.Contains(doc, "[!NOTE]") {
		t.Error("empty caption must not produce a callout block")
	}
	if !strings.Contains(doc, "## Details") {
		t.Error("details section missing")
	}
}

func TestRenderDetailsGating(t *testing.T) {
	rec := types.Record{
		Title:       "img",
		Type:        "image",
		Icon:        "🖼️",
		ImageWidth:  str("100"),
		// Height missing: the dimensions line needs both.
	}
	doc := Render(&rec, "", "img.jpg")

	for _, absent := range []string{"- **Camera**", "- **Created**", "- **Dimensions**"} {
		if strings.Contains(doc, absent) {
			t.Errorf("document contains %q despite missing fields", absent)
		}
	}
}

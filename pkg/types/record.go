// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is the canonical flat metadata record for one image: the single
// input to sidecar-note rendering. Pointer fields distinguish "tag absent
// from the image" (nil) from "tag present but empty"; a field left nil
// contributes nothing to the rendered header.
//
// Description is the exception: it is always present and normalizes to
// the empty string when the source tag is missing, because the
// caption-rendering path treats it as always-available text.
type Record struct {
	// Title is the image's base filename without extension.
	Title string `yaml:"title"`

	// Type and Icon are static tags injected on every record.
	Type string `yaml:"type"`
	Icon string `yaml:"icon"`

	// CreationDate and ModifiedDate are normalized timestamps in the
	// form "YYYY-MM-DD HH:MM:SS".
	CreationDate *string `yaml:"creation_date,omitempty"`
	ModifiedDate *string `yaml:"modified_date,omitempty"`

	CameraModel *string `yaml:"camera_model,omitempty"`

	FileType    *string `yaml:"file_type,omitempty"`
	ImageHeight *string `yaml:"image_height,omitempty"`
	ImageWidth  *string `yaml:"image_width,omitempty"`

	// Description is the raw EXIF image description, distinct from the
	// resolved caption.
	Description string `yaml:"image_description"`

	// GPSLatitude and GPSLongitude are set together or not at all.
	GPSLatitude  *float64 `yaml:"gps_latitude,omitempty"`
	GPSLongitude *float64 `yaml:"gps_longitude,omitempty"`

	// Place is the reverse-geocoded place name. Set only when both
	// coordinates are present and the lookup succeeded.
	Place *string `yaml:"place,omitempty"`

	// Keywords preserves source order and duplicates.
	Keywords []string `yaml:"tags,omitempty"`

	// Stage is a static workflow tag, injected only when configured.
	Stage *string `yaml:"stage,omitempty"`
}

// HasGPS reports whether the record carries a complete coordinate pair.
func (r *Record) HasGPS() bool {
	return r.GPSLatitude != nil && r.GPSLongitude != nil
}

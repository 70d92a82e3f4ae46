// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TagTree holds metadata decoded from one image, grouped by namespace.
// Every field is optional: a nil pointer or nil slice means the tag was
// not present in the image. Interpreting values (date rewriting, keyword
// splitting, GPS pairing) is the normalizer's job, not the decoder's.
type TagTree struct {
	EXIF EXIFTags `yaml:"exif"`
	XMP  XMPTags  `yaml:"xmp"`
	IPTC IPTCTags `yaml:"iptc"`
	GPS  GPSTags  `yaml:"gps"`
	File FileTags `yaml:"file"`
}

// EXIFTags holds fields read from the EXIF IFDs of a JPEG APP1 segment.
type EXIFTags struct {
	// DateTimeOriginal is the capture timestamp in the EXIF lexical
	// form "YYYY:MM:DD HH:MM:SS".
	DateTimeOriginal *string `yaml:"date_time_original,omitempty"`

	// DateTime is the file modification timestamp, same lexical form.
	DateTime *string `yaml:"date_time,omitempty"`

	// Model is the camera model string.
	Model *string `yaml:"model,omitempty"`

	// ImageDescription is the free-text description tag.
	ImageDescription *string `yaml:"image_description,omitempty"`

	// UserComment is the raw tag payload including the leading 8-byte
	// character-encoding header. Nil when the tag is absent.
	UserComment []byte `yaml:"user_comment,omitempty"`
}

// XMPTags holds fields read from the XMP packet.
type XMPTags struct {
	// UserComment is the exif:UserComment property.
	UserComment *string `yaml:"user_comment,omitempty"`

	// Description is the dc:description property.
	Description *string `yaml:"description,omitempty"`

	// Subject holds dc:subject entries when the packet carries an
	// rdf:Bag or rdf:Seq, in document order.
	Subject []string `yaml:"subject,omitempty"`

	// SubjectText holds a plain-text dc:subject value, possibly
	// comma-delimited. At most one of Subject and SubjectText is set.
	SubjectText *string `yaml:"subject_text,omitempty"`
}

// IPTCTags holds fields read from the IPTC-IIM block of an APP13 segment.
type IPTCTags struct {
	// CaptionAbstract is IPTC dataset 2:120 (Caption/Abstract).
	CaptionAbstract *string `yaml:"caption_abstract,omitempty"`

	// Keywords collects the repeatable IPTC dataset 2:25 entries in
	// record order.
	Keywords []string `yaml:"keywords,omitempty"`
}

// GPSTags holds decoded GPS coordinates. Each side is decoded
// independently so an image with only one half of a coordinate pair is
// representable; pairing them up is the normalizer's call.
type GPSTags struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

// FileTags holds properties of the image container itself.
type FileTags struct {
	FileType    *string `yaml:"file_type,omitempty"`
	ImageHeight *string `yaml:"image_height,omitempty"`
	ImageWidth  *string `yaml:"image_width,omitempty"`
}

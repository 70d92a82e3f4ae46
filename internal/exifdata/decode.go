// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exifdata decodes the metadata namespaces embedded in a JPEG
// image (EXIF, XMP, IPTC, GPS, file properties) into one typed tag tree.
// Each namespace is optional; a field the image does not carry stays nil.
package exifdata

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

const exifHeader = "Exif\x00\x00"

// Decode parses all supported metadata namespaces from raw JPEG bytes.
// Input that is not a JPEG stream is a fatal decode error; an image that
// simply carries no metadata yields an empty tree.
func Decode(data []byte) (*types.TagTree, error) {
	segs, err := scanSegments(data)
	if err != nil {
		return nil, fmt.Errorf("scanning JPEG segments: %w", err)
	}

	tree := &types.TagTree{}

	hasEXIF := false
	for _, seg := range segs {
		switch {
		case seg.marker == markerAPP1 && bytes.HasPrefix(seg.data, []byte(exifHeader)):
			hasEXIF = true
		case seg.marker == markerAPP1 && bytes.HasPrefix(seg.data, []byte(xmpHeader)):
			parseXMP(seg.data[len(xmpHeader):], &tree.XMP)
		case seg.marker == markerAPP13 && bytes.HasPrefix(seg.data, []byte(photoshopHeader)):
			parseIPTC(seg.data[len(photoshopHeader):], &tree.IPTC)
		}
	}

	if hasEXIF {
		// A present but corrupt EXIF block degrades to an empty EXIF
		// namespace rather than failing the whole decode.
		if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
			fillEXIF(x, tree)
		}
	}

	fileType := "jpeg"
	tree.File.FileType = &fileType
	if cfg, err := jpeg.DecodeConfig(bytes.NewReader(data)); err == nil {
		w := strconv.Itoa(cfg.Width)
		h := strconv.Itoa(cfg.Height)
		tree.File.ImageWidth = &w
		tree.File.ImageHeight = &h
	}

	return tree, nil
}

func fillEXIF(x *exif.Exif, tree *types.TagTree) {
	tree.EXIF.DateTimeOriginal = stringField(x, exif.DateTimeOriginal)
	tree.EXIF.DateTime = stringField(x, exif.DateTime)
	tree.EXIF.Model = stringField(x, exif.Model)
	tree.EXIF.ImageDescription = stringField(x, exif.ImageDescription)

	if tag, err := x.Get(exif.UserComment); err == nil && len(tag.Val) > 0 {
		tree.EXIF.UserComment = append([]byte(nil), tag.Val...)
	}

	tree.GPS.Latitude = gpsCoord(x, exif.GPSLatitude, exif.GPSLatitudeRef, "S")
	tree.GPS.Longitude = gpsCoord(x, exif.GPSLongitude, exif.GPSLongitudeRef, "W")
}

// stringField reads an ASCII tag, dropping trailing NULs and returning
// nil for absent or empty values.
func stringField(x *exif.Exif, name exif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return nil
	}
	s = strings.TrimRight(s, "\x00")
	if s == "" {
		return nil
	}
	return &s
}

// gpsCoord converts one side of a coordinate (three rationals plus a
// hemisphere reference) to decimal degrees. Each side is decoded
// independently; completeness is enforced downstream.
func gpsCoord(x *exif.Exif, name, refName exif.FieldName, negativeRef string) *float64 {
	tag, err := x.Get(name)
	if err != nil || tag.Count < 3 {
		return nil
	}
	deg, err1 := ratFloat(tag, 0)
	min, err2 := ratFloat(tag, 1)
	sec, err3 := ratFloat(tag, 2)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}

	v := deg + min/60 + sec/3600
	if ref, err := x.Get(refName); err == nil {
		if s, err := ref.StringVal(); err == nil && strings.TrimSpace(s) == negativeRef {
			v = -v
		}
	}
	return &v
}

func ratFloat(tag *tiff.Tag, i int) (float64, error) {
	r, err := tag.Rat(i)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

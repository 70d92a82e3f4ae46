// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exifdata

import (
	"encoding/binary"
	"strings"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// photoshopHeader identifies a Photoshop image-resource block inside an
// APP13 segment. IPTC-IIM data lives in resource 0x0404.
const photoshopHeader = "Photoshop 3.0\x00"

const iptcResourceID = 0x0404

// IPTC record 2 (application) dataset numbers.
const (
	iptcKeywords        = 25
	iptcCaptionAbstract = 120
)

// parseIPTC extracts caption and keywords from the Photoshop resource
// block of an APP13 segment. Structural damage degrades to whatever was
// parsed so far; it never fails the decode.
func parseIPTC(block []byte, out *types.IPTCTags) {
	// Walk 8BIM image resources looking for the IPTC-IIM resource.
	i := 0
	for i+12 <= len(block) {
		if string(block[i:i+4]) != "8BIM" {
			return
		}
		resID := binary.BigEndian.Uint16(block[i+4 : i+6])
		i += 6

		// Pascal-style resource name, padded to an even byte count.
		nameLen := int(block[i]) + 1
		if nameLen%2 != 0 {
			nameLen++
		}
		i += nameLen
		if i+4 > len(block) {
			return
		}

		size := int(binary.BigEndian.Uint32(block[i : i+4]))
		i += 4
		if i+size > len(block) {
			return
		}
		if resID == iptcResourceID {
			parseDatasets(block[i:i+size], out)
			return
		}

		// Resource data is padded to an even length.
		if size%2 != 0 {
			size++
		}
		i += size
	}
}

// parseDatasets walks IPTC-IIM datasets (0x1C record dataset length value)
// and collects the record-2 fields the pipeline consumes.
func parseDatasets(data []byte, out *types.IPTCTags) {
	i := 0
	for i+5 <= len(data) {
		if data[i] != 0x1C {
			return
		}
		record := data[i+1]
		dataset := data[i+2]
		length := int(binary.BigEndian.Uint16(data[i+3 : i+5]))
		i += 5

		// Extended datasets (high bit set) are not produced for the
		// short text fields we read; stop rather than misparse.
		if length&0x8000 != 0 {
			return
		}
		if i+length > len(data) {
			return
		}
		value := string(data[i : i+length])
		i += length

		if record != 2 {
			continue
		}
		switch dataset {
		case iptcCaptionAbstract:
			if out.CaptionAbstract == nil && strings.TrimSpace(value) != "" {
				v := value
				out.CaptionAbstract = &v
			}
		case iptcKeywords:
			if v := strings.TrimSpace(value); v != "" {
				out.Keywords = append(out.Keywords, v)
			}
		}
	}
}

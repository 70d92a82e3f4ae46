// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exifdata

import (
	"encoding/binary"
	"fmt"
)

// JPEG marker bytes of interest.
const (
	markerSOI   = 0xD8
	markerEOI   = 0xD9
	markerSOS   = 0xDA
	markerAPP1  = 0xE1
	markerAPP13 = 0xED
	markerTEM   = 0x01
)

// segment is one marker segment of a JPEG stream, payload without the
// two length bytes.
type segment struct {
	marker byte
	data   []byte
}

// scanSegments walks the JPEG marker stream up to the start of scan and
// returns all length-bearing segments. A stream that does not begin with
// SOI is rejected; metadata segments always precede the entropy-coded
// image data, so scanning stops at SOS.
func scanSegments(data []byte) ([]segment, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, fmt.Errorf("not a JPEG stream: missing SOI marker")
	}

	var segs []segment
	i := 2
	for i+2 <= len(data) {
		if data[i] != 0xFF {
			return nil, fmt.Errorf("invalid JPEG marker byte 0x%02x at offset %d", data[i], i)
		}
		marker := data[i+1]
		i += 2

		switch {
		case marker == 0xFF:
			// Fill byte; the next byte is the real marker.
			i--
			continue
		case marker == markerTEM || (marker >= 0xD0 && marker <= 0xD7):
			// Standalone markers carry no length.
			continue
		case marker == markerSOS || marker == markerEOI:
			return segs, nil
		}

		if i+2 > len(data) {
			return nil, fmt.Errorf("truncated segment header at offset %d", i)
		}
		length := int(binary.BigEndian.Uint16(data[i : i+2]))
		if length < 2 || i+length > len(data) {
			return nil, fmt.Errorf("truncated 0x%02x segment at offset %d", marker, i)
		}
		segs = append(segs, segment{marker: marker, data: data[i+2 : i+length]})
		i += length
	}
	return segs, nil
}

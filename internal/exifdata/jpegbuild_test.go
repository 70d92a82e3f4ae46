// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exifdata

import (
	"bytes"
	"encoding/binary"
)

// Test-only builders for synthetic JPEG streams carrying EXIF, XMP, and
// IPTC payloads.

// buildJPEG wraps the given segments in SOI/EOI markers, with a minimal
// start-of-scan before EOI: image/jpeg refuses a stream without SOS, so
// dimension probing via DecodeConfig needs it even with no scan data.
func buildJPEG(segs ...[]byte) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8})
	for _, s := range segs {
		b.Write(s)
	}
	b.Write(buildSegment(markerSOS, []byte{1, 1, 0, 0, 63, 0}))
	b.Write([]byte{0xFF, 0xD9})
	return b.Bytes()
}

// buildSegment assembles one marker segment with its length prefix.
func buildSegment(marker byte, payload []byte) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xFF, marker})
	length := make([]byte, 2)
	binary.BigEndian.PutUint16(length, uint16(len(payload)+2))
	b.Write(length)
	b.Write(payload)
	return b.Bytes()
}

// buildSOF0 assembles a baseline start-of-frame segment for a grayscale
// image, enough for image/jpeg DecodeConfig to report dimensions.
func buildSOF0(width, height int) []byte {
	payload := []byte{
		8, // precision
		byte(height >> 8), byte(height),
		byte(width >> 8), byte(width),
		1,          // one component
		1, 0x11, 0, // component id, sampling, quant table
	}
	return buildSegment(0xC0, payload)
}

func buildXMPSegment(packet string) []byte {
	return buildSegment(markerAPP1, append([]byte(xmpHeader), []byte(packet)...))
}

// iptcDataset assembles one IPTC-IIM record-2 dataset.
func iptcDataset(dataset byte, value string) []byte {
	var b bytes.Buffer
	b.Write([]byte{0x1C, 2, dataset})
	length := make([]byte, 2)
	binary.BigEndian.PutUint16(length, uint16(len(value)))
	b.Write(length)
	b.WriteString(value)
	return b.Bytes()
}

// buildIPTCSegment wraps IPTC datasets in a Photoshop 8BIM resource
// inside an APP13 segment.
func buildIPTCSegment(datasets ...[]byte) []byte {
	var iim bytes.Buffer
	for _, d := range datasets {
		iim.Write(d)
	}

	var res bytes.Buffer
	res.WriteString("8BIM")
	resID := make([]byte, 2)
	binary.BigEndian.PutUint16(resID, iptcResourceID)
	res.Write(resID)
	res.Write([]byte{0, 0}) // empty pascal name, padded
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(iim.Len()))
	res.Write(size)
	res.Write(iim.Bytes())
	if iim.Len()%2 != 0 {
		res.WriteByte(0)
	}

	return buildSegment(markerAPP13, append([]byte(photoshopHeader), res.Bytes()...))
}

// --- EXIF / TIFF building ---

// tiffEntry is one IFD entry; value holds the raw little-endian payload.
type tiffEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte
}

func asciiEntry(tag uint16, s string) tiffEntry {
	v := append([]byte(s), 0)
	return tiffEntry{tag: tag, typ: 2, count: uint32(len(v)), value: v}
}

func longEntry(tag uint16, v uint32) tiffEntry {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return tiffEntry{tag: tag, typ: 4, count: 1, value: b}
}

func undefinedEntry(tag uint16, v []byte) tiffEntry {
	return tiffEntry{tag: tag, typ: 7, count: uint32(len(v)), value: v}
}

func rationalEntry(tag uint16, rats ...[2]uint32) tiffEntry {
	var b bytes.Buffer
	for _, r := range rats {
		num := make([]byte, 4)
		den := make([]byte, 4)
		binary.LittleEndian.PutUint32(num, r[0])
		binary.LittleEndian.PutUint32(den, r[1])
		b.Write(num)
		b.Write(den)
	}
	return tiffEntry{tag: tag, typ: 5, count: uint32(len(rats)), value: b.Bytes()}
}

// ifdSize returns the byte length of an IFD block with n entries.
func ifdSize(n int) int {
	return 2 + n*12 + 4
}

// writeIFD appends one IFD at its precomputed offset. Out-of-line values
// are appended to data, whose first byte lives at dataOffset.
func writeIFD(out *bytes.Buffer, entries []tiffEntry, data *bytes.Buffer, dataOffset int) {
	count := make([]byte, 2)
	binary.LittleEndian.PutUint16(count, uint16(len(entries)))
	out.Write(count)

	for _, e := range entries {
		binary.Write(out, binary.LittleEndian, e.tag)
		binary.Write(out, binary.LittleEndian, e.typ)
		binary.Write(out, binary.LittleEndian, e.count)
		if len(e.value) <= 4 {
			padded := make([]byte, 4)
			copy(padded, e.value)
			out.Write(padded)
		} else {
			offset := make([]byte, 4)
			binary.LittleEndian.PutUint32(offset, uint32(dataOffset+data.Len()))
			out.Write(offset)
			data.Write(e.value)
		}
	}
	out.Write([]byte{0, 0, 0, 0}) // no next IFD
}

const (
	tagImageDescription = 0x010E
	tagModel            = 0x0110
	tagDateTime         = 0x0132
	tagExifIFDPointer   = 0x8769
	tagGPSIFDPointer    = 0x8825
	tagDateTimeOriginal = 0x9003
	tagUserComment      = 0x9286
	tagGPSLatitudeRef   = 0x0001
	tagGPSLatitude      = 0x0002
	tagGPSLongitudeRef  = 0x0003
	tagGPSLongitude     = 0x0004
)

// buildEXIFSegment assembles an APP1 EXIF segment with an IFD0, an EXIF
// sub-IFD, and an optional GPS sub-IFD (present when gps is non-empty).
func buildEXIFSegment(ifd0, exifIFD, gps []tiffEntry) []byte {
	// Layout: header(8) | IFD0 | ExifIFD | [GPSIFD] | data area.
	ifd0Offset := 8
	// IFD0 carries the caller's entries plus the sub-IFD pointers.
	n0 := len(ifd0) + 1
	if len(gps) > 0 {
		n0++
	}
	exifOffset := ifd0Offset + ifdSize(n0)
	gpsOffset := exifOffset + ifdSize(len(exifIFD))
	dataOffset := gpsOffset
	if len(gps) > 0 {
		dataOffset += ifdSize(len(gps))
	}

	ifd0 = append(ifd0, longEntry(tagExifIFDPointer, uint32(exifOffset)))
	if len(gps) > 0 {
		ifd0 = append(ifd0, longEntry(tagGPSIFDPointer, uint32(gpsOffset)))
	}

	var tiff, data bytes.Buffer
	tiff.Write([]byte{'I', 'I', 0x2A, 0x00})
	offset := make([]byte, 4)
	binary.LittleEndian.PutUint32(offset, uint32(ifd0Offset))
	tiff.Write(offset)

	writeIFD(&tiff, ifd0, &data, dataOffset)
	writeIFD(&tiff, exifIFD, &data, dataOffset)
	if len(gps) > 0 {
		writeIFD(&tiff, gps, &data, dataOffset)
	}
	tiff.Write(data.Bytes())

	return buildSegment(markerAPP1, append([]byte(exifHeader), tiff.Bytes()...))
}

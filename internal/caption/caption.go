// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package caption resolves the free-text caption for an image by a
// priority search across its metadata namespaces.
package caption

import (
	"strings"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// Resolve returns the first non-empty caption text found, searching in
// fixed priority order: IPTC Caption/Abstract, XMP UserComment, XMP
// Description, EXIF ImageDescription. Matches are returned verbatim; the
// trim is only an emptiness check. When no textual source matches, the
// raw EXIF UserComment bytes are tried as a last resort. Returns "" when
// every source is empty or absent.
func Resolve(tree *types.TagTree) string {
	sources := []*string{
		tree.IPTC.CaptionAbstract,
		tree.XMP.UserComment,
		tree.XMP.Description,
		tree.EXIF.ImageDescription,
	}
	for _, s := range sources {
		if s != nil && strings.TrimSpace(*s) != "" {
			return *s
		}
	}
	return decodeRawUserComment(tree.EXIF.UserComment)
}

// decodeRawUserComment decodes the raw EXIF UserComment payload. The tag
// starts with an 8-byte character-encoding header; the remainder is
// decoded byte-per-character, trailing NUL padding stripped, and the
// result trimmed. A comment in a multi-byte encoding surfaces as garbage
// text rather than an error; that is an accepted limitation.
func decodeRawUserComment(raw []byte) string {
	if len(raw) <= 8 {
		return ""
	}
	var b strings.Builder
	for _, c := range raw[8:] {
		b.WriteRune(rune(c))
	}
	s := strings.TrimRight(b.String(), "\x00")
	return strings.TrimSpace(s)
}

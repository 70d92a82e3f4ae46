// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exifdata

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// xmpHeader identifies an XMP packet inside an APP1 segment.
const xmpHeader = "http://ns.adobe.com/xap/1.0/\x00"

// parseXMP extracts the description, user-comment, and subject properties
// from an XMP packet. The packet is RDF/XML; properties may appear either
// as direct element text or wrapped in rdf:Alt/Bag/Seq language
// alternatives and lists. Namespace prefixes vary between writers, so
// matching is on local names only. A malformed packet degrades to
// whatever was parsed before the error; it never fails the decode.
func parseXMP(packet []byte, out *types.XMPTags) {
	dec := xml.NewDecoder(bytes.NewReader(packet))

	// stack holds local element names from the root to the current
	// element.
	var stack []string
	var subjectItems []string
	var subjectText, description, userComment strings.Builder

	enclosing := func() string {
		for j := len(stack) - 1; j >= 0; j-- {
			switch stack[j] {
			case "description", "UserComment", "subject":
				return stack[j]
			}
		}
		return ""
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			// rdf:Description is a structural wrapper, not the
			// dc:description property.
			name := t.Name.Local
			if name == "Description" && strings.Contains(t.Name.Space, "rdf") {
				name = "RDF-Description"
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			top := stack[len(stack)-1]
			switch enclosing() {
			case "description":
				description.WriteString(text)
			case "UserComment":
				userComment.WriteString(text)
			case "subject":
				if top == "li" {
					subjectItems = append(subjectItems, strings.TrimSpace(text))
				} else {
					subjectText.WriteString(text)
				}
			}
		}
	}

	if s := description.String(); s != "" && out.Description == nil {
		out.Description = &s
	}
	if s := userComment.String(); s != "" && out.UserComment == nil {
		out.UserComment = &s
	}
	if len(subjectItems) > 0 && out.Subject == nil {
		out.Subject = subjectItems
	} else if s := strings.TrimSpace(subjectText.String()); s != "" && out.Subject == nil && out.SubjectText == nil {
		out.SubjectText = &s
	}
}

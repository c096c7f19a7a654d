package spread

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// unknownTitle is the fallback book title when the package metadata
// declares none.
const unknownTitle = "Unknown Title"

// parseOPF scans the package document for metadata, manifest, and spine.
// It returns the book metadata (first non-empty title and creator), the
// spine's idrefs in reading order, and the manifest restricted to
// (X)HTML content items as an id → href map. Matching is on local
// element names across EPUB 2 and 3 namespace conventions.
func parseOPF(data []byte) (BookMetadata, []string, map[string]string, error) {
	data = preprocessHTMLEntities(stripBOM(data))
	d := xml.NewDecoder(bytes.NewReader(data))

	var metadata BookMetadata
	var spine []string
	manifest := make(map[string]string)

	inMetadata := false
	currentTag := ""

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return metadata, nil, nil, fmt.Errorf("spread: parse package document: %v: %w", err, ErrMalformedMarkup)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "metadata":
				inMetadata = true
			case "title", "creator":
				if inMetadata {
					currentTag = t.Name.Local
				}
			case "item":
				id, href, mediaType := "", "", ""
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "id":
						id = attr.Value
					case "href":
						href = attr.Value
					case "media-type":
						mediaType = attr.Value
					}
				}
				// Only (X)HTML items can contribute reading text.
				if strings.Contains(mediaType, "xhtml") || strings.Contains(mediaType, "html") {
					manifest[id] = href
				}
			case "itemref":
				for _, attr := range t.Attr {
					if attr.Name.Local == "idref" {
						spine = append(spine, attr.Value)
					}
				}
			}

		case xml.CharData:
			if !inMetadata {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch currentTag {
			case "title":
				if metadata.Title == "" {
					metadata.Title = text
				}
			case "creator":
				if metadata.Author == "" {
					metadata.Author = text
				}
			}

		case xml.EndElement:
			if t.Name.Local == "metadata" {
				inMetadata = false
			}
			currentTag = ""
		}
	}

	if metadata.Title == "" {
		metadata.Title = unknownTitle
	}

	return metadata, spine, manifest, nil
}

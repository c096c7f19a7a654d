package spread

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// containerPath is the well-known location of container.xml in an ePub archive.
const containerPath = "META-INF/container.xml"

// parseContainer scans container.xml for the first <rootfile> element and
// returns its full-path attribute, the archive path of the package
// document. Element matching is on local names, so namespace prefixes do
// not matter. Returns ErrMissingOPF when no usable rootfile is declared
// and ErrMalformedMarkup when the XML cannot be parsed.
func parseContainer(data []byte) (string, error) {
	data = preprocessHTMLEntities(stripBOM(data))
	d := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("spread: parse container.xml: %v: %w", err, ErrMalformedMarkup)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "rootfile" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "full-path" {
				if fullPath := strings.TrimSpace(attr.Value); fullPath != "" {
					return fullPath, nil
				}
			}
		}
	}

	return "", fmt.Errorf("spread: container.xml declares no rootfile path: %w", ErrMissingOPF)
}

package spread

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

// validContainerXML is a spec-conformant container.xml pointing at
// OEBPS/content.opf.
const validContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// buildEPubBytes creates an in-memory ZIP archive from the provided files
// map (path → content) and returns the raw archive bytes. The mimetype
// entry, when present, is written first as the ePub spec requires.
// It calls t.Fatal on any error.
func buildEPubBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	if mt, ok := files["mimetype"]; ok {
		fw, err := zw.Create("mimetype")
		if err != nil {
			t.Fatalf("buildEPubBytes: create mimetype: %v", err)
		}
		if _, err := io.WriteString(fw, mt); err != nil {
			t.Fatalf("buildEPubBytes: write mimetype: %v", err)
		}
	}
	for name, content := range files {
		if name == "mimetype" {
			continue
		}
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("buildEPubBytes: create %s: %v", name, err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatalf("buildEPubBytes: write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildEPubBytes: close writer: %v", err)
	}
	return buf.Bytes()
}

// chapterXHTML wraps body markup in a minimal XHTML document.
func chapterXHTML(title, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>` + title + `</title></head>
<body>` + body + `</body>
</html>`
}

// threeChapterOPF declares three XHTML chapters plus a stylesheet that
// must not enter the manifest map.
const threeChapterOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>The Test Book</dc:title>
    <dc:creator>A. Writer</dc:creator>
  </metadata>
  <manifest>
    <item id="ch1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch2" href="chapter2.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch3" href="chapter3.xhtml" media-type="application/xhtml+xml"/>
    <item id="css" href="style.css" media-type="text/css"/>
  </manifest>
  <spine>
    <itemref idref="ch1"/>
    <itemref idref="ch2"/>
    <itemref idref="ch3"/>
  </spine>
</package>`

// threeChapterEPub builds the shared round-trip fixture: a three-chapter
// book with known title, author, and word counts.
func threeChapterEPub(t *testing.T) []byte {
	t.Helper()
	return buildEPubBytes(t, map[string]string{
		"mimetype":               "application/epub+zip",
		"META-INF/container.xml": validContainerXML,
		"OEBPS/content.opf":      threeChapterOPF,
		// 2 words.
		"OEBPS/chapter1.xhtml": chapterXHTML("One", `<p>Hello world.</p>`),
		// 3 + 2 words across two paragraphs.
		"OEBPS/chapter2.xhtml": chapterXHTML("Two", `<p>Reading is quite</p><p>pleasant indeed.</p>`),
		// 4 words.
		"OEBPS/chapter3.xhtml": chapterXHTML("Three", `<p>The very last chapter.</p>`),
		"OEBPS/style.css":      "body { margin: 0; }",
	})
}

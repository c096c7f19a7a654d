package spread

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Parse parses an EPUB package supplied fully in memory into a Book,
// using the default chunk-splitting limit.
func Parse(data []byte) (*Book, error) {
	return ParseWithLayout(data, DefaultMaxChunkChars)
}

// ParseWithLayout parses an EPUB package with a caller-supplied chunk
// limit. maxChunkChars bounds the character length of word chunks built
// for display; callers typically derive it from a display width as
// width - 2. Values outside [10, 22] are clamped.
//
// Container and package resolution failures are fatal and surface as a
// typed error; failures reading or extracting an individual chapter
// merely omit that chapter from the result.
func ParseWithLayout(data []byte, maxChunkChars int) (*Book, error) {
	maxChunkChars = clampChunkChars(maxChunkChars)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("spread: open archive: %v: %w", err, ErrArchive)
	}
	a := newArchive(zr)

	// Locate and parse the container pointer.
	containerFile := a.find(containerPath)
	if containerFile == nil {
		return nil, fmt.Errorf("spread: %s: %w", containerPath, ErrMissingContainer)
	}
	containerData, err := readZipFile(containerFile)
	if err != nil {
		return nil, fmt.Errorf("spread: read container.xml: %v: %w", err, ErrIO)
	}
	opfPath, err := parseContainer(containerData)
	if err != nil {
		return nil, err
	}

	// Parse the package document at the container's rootfile path.
	opfFile := a.find(opfPath)
	if opfFile == nil {
		return nil, fmt.Errorf("spread: package document %s: %w", opfPath, ErrInvalidStructure)
	}
	opfData, err := readZipFile(opfFile)
	if err != nil {
		return nil, fmt.Errorf("spread: read package document: %v: %w", err, ErrIO)
	}
	metadata, spine, manifest, err := parseOPF(opfData)
	if err != nil {
		return nil, err
	}

	// Walk the spine in reading order. A spine entry that cannot be
	// resolved, read, or reduced to at least one paragraph is skipped;
	// the book stays readable without it. Fallback chapter numbering
	// still reflects the original spine position.
	var chapters []Chapter
	for i, idref := range spine {
		href, ok := manifest[idref]
		if !ok {
			continue
		}
		chapterPath := resolveRelativePath(opfPath, href)
		if chapterPath == "" {
			continue
		}
		content, err := a.readFile(chapterPath)
		if err != nil {
			continue
		}

		paragraphs := extractParagraphs(content)
		if len(paragraphs) == 0 {
			continue
		}
		title := extractTitle(content)
		if title == "" {
			title = fmt.Sprintf("Chapter %d", i+1)
		}
		chapters = append(chapters, newChapter(i, title, paragraphs, maxChunkChars))
	}

	return &Book{
		Metadata: metadata,
		Chapters: chapters,
		Stats:    newBookStats(chapters),
	}, nil
}

// archive wraps a zip.Reader with exact-match and lowercase entry
// indexes for O(1) lookups.
type archive struct {
	exact map[string]*zip.File
	lower map[string]*zip.File
}

// newArchive builds the entry indexes once per parse.
func newArchive(zr *zip.Reader) *archive {
	a := &archive{
		exact: make(map[string]*zip.File, len(zr.File)),
		lower: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		if _, exists := a.exact[f.Name]; !exists {
			a.exact[f.Name] = f // first match wins for exact
		}
		lower := strings.ToLower(f.Name)
		if _, exists := a.lower[lower]; !exists {
			a.lower[lower] = f // first match wins for case-insensitive
		}
	}
	return a
}

// find looks up a ZIP entry by path using the pre-built indexes.
// It tries an exact match first, then falls back to a case-insensitive
// match, which tolerates packages whose hrefs disagree with the archive
// on letter case.
func (a *archive) find(name string) *zip.File {
	if f, ok := a.exact[name]; ok {
		return f
	}
	if f, ok := a.lower[strings.ToLower(name)]; ok {
		return f
	}
	return nil
}

// readFile reads an archive entry by path, case-insensitively.
func (a *archive) readFile(name string) ([]byte, error) {
	f := a.find(name)
	if f == nil {
		return nil, fmt.Errorf("spread: %s: %w", name, ErrInvalidStructure)
	}
	return readZipFile(f)
}

package spread

import "errors"

// Sentinel errors returned by the spread package. All of them abort the
// whole parse; per-chapter problems never surface as errors, the chapter
// is simply omitted from the result.
var (
	// ErrArchive indicates the input could not be opened as a ZIP archive.
	ErrArchive = errors.New("spread: invalid or corrupted archive")

	// ErrIO indicates an unexpected failure reading a required archive entry.
	ErrIO = errors.New("spread: read error")

	// ErrMalformedMarkup indicates an XML well-formedness violation in the
	// container or package document.
	ErrMalformedMarkup = errors.New("spread: malformed container or package XML")

	// ErrMissingContainer indicates the archive has no
	// META-INF/container.xml entry.
	ErrMissingContainer = errors.New("spread: missing META-INF/container.xml")

	// ErrMissingOPF indicates the container declares no usable rootfile
	// path for the package document.
	ErrMissingOPF = errors.New("spread: container has no package document path")

	// ErrInvalidStructure indicates a required file named by the package
	// is absent from the archive, even after a case-insensitive lookup.
	ErrInvalidStructure = errors.New("spread: required file not found in archive")
)

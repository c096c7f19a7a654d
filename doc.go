// Package spread converts an EPUB package into display-ready word tokens
// annotated with precomputed metadata, so that a reading application can
// compute per-word timing and progress statistics in constant time
// without re-scanning text at render time.
//
// The whole book is supplied as an in-memory byte buffer and parsed in a
// single pass: the container and package documents resolve the spine into
// an ordered chapter list, each chapter's XHTML is reduced to plain
// paragraphs, paragraphs are tokenized into classified [Word] values, and
// per-chapter histograms are aggregated into book-level totals.
//
// # Parsing a book
//
//	book, err := spread.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(book.Metadata.Title, book.Stats.TotalWords)
//
// Use [ParseWithLayout] to control how aggressively overlong words are
// split into display chunks; the limit is usually derived from the
// display width:
//
//	book, err := spread.ParseWithLayout(data, width-2)
//
// # Words and chunks
//
// Every [Word] carries a [LengthBucket] computed from its visible
// character count and a [Punctuation] class read from the original
// token's trailing character. Words of thirteen or more letters are cut
// at morpheme-like boundaries into hyphen-marked chunks:
//
//	spread.Tokenize("internationalization.", spread.DefaultMaxChunkChars)
//	// → "inter-", "-national-", "-ization" (Period on the last chunk)
//
// The final word of every paragraph except the last is marked with
// [PunctParagraph] when it carries no stronger punctuation of its own.
//
// # Error handling
//
// Structural failures are fatal and typed:
//   - [ErrArchive] – the buffer is not a readable ZIP archive
//   - [ErrMissingContainer] – no META-INF/container.xml entry
//   - [ErrMissingOPF] – the container declares no package document path
//   - [ErrInvalidStructure] – the package document is absent from the archive
//   - [ErrMalformedMarkup] – the container or package XML is not well-formed
//   - [ErrIO] – a required entry could not be read
//
// Content-level problems never fail the parse: a chapter whose file is
// missing or whose markup is malformed is skipped or extracted
// best-effort, because a book should remain readable even when one
// content file is broken.
package spread

package spread

// LengthBucket classifies a word's visible length for adaptive display
// timing. The bucket is computed from the count of alphanumeric,
// apostrophe, and hyphen characters in the word's text.
type LengthBucket uint8

const (
	// Short covers words of 1-4 characters.
	Short LengthBucket = iota
	// Medium covers words of 5-8 characters.
	Medium
	// Long covers words of 9-12 characters.
	Long
	// VeryLong covers words of 13 or more characters.
	VeryLong
)

// numLengthBuckets sizes the per-bucket histogram in ChapterStats.
const numLengthBuckets = 4

// bucketForLength maps a clean character count to its LengthBucket.
func bucketForLength(n int) LengthBucket {
	switch {
	case n <= 4:
		return Short
	case n <= 8:
		return Medium
	case n <= 12:
		return Long
	default:
		return VeryLong
	}
}

// String returns a human-readable name for the bucket.
func (b LengthBucket) String() string {
	switch b {
	case Short:
		return "Short"
	case Medium:
		return "Medium"
	case Long:
		return "Long"
	case VeryLong:
		return "VeryLong"
	default:
		return "Unknown"
	}
}

// Punctuation classifies what follows a word. It is derived from the last
// character of the original whitespace-separated token, except Paragraph,
// which is a synthetic marker set on the final word of every paragraph
// but the last.
type Punctuation uint8

const (
	// PunctNone means no pause-inducing punctuation follows the word.
	PunctNone Punctuation = iota
	// PunctComma covers ',', ';', and ':'.
	PunctComma
	// PunctPeriod covers '.', '!', and '?'.
	PunctPeriod
	// PunctParagraph marks the last word of a non-final paragraph.
	PunctParagraph
)

// numPunctClasses sizes the per-class histogram in ChapterStats.
const numPunctClasses = 4

// punctForChar maps a token's trailing character to its Punctuation class.
func punctForChar(c rune) Punctuation {
	switch c {
	case '.', '!', '?':
		return PunctPeriod
	case ',', ';', ':':
		return PunctComma
	default:
		return PunctNone
	}
}

// String returns a human-readable name for the punctuation class.
func (p Punctuation) String() string {
	switch p {
	case PunctNone:
		return "None"
	case PunctComma:
		return "Comma"
	case PunctPeriod:
		return "Period"
	case PunctParagraph:
		return "Paragraph"
	default:
		return "Unknown"
	}
}

// Word is a single display token with precomputed metadata. A Word may be
// a sub-chunk of a longer original word, in which case Text carries
// leading/trailing hyphen markers indicating continuation.
type Word struct {
	// Text is the display string. Never empty.
	Text string

	// LengthBucket is computed from this chunk's own clean character
	// count, not the original token's.
	LengthBucket LengthBucket

	// FollowingPunct is the punctuation class that follows this word.
	// For a split word only the final chunk carries the original
	// token's class; earlier chunks are PunctNone.
	FollowingPunct Punctuation
}

// ChapterStats holds precomputed word-classification histograms for a
// chapter, enabling O(1) timing and progress calculations without
// re-scanning word text.
type ChapterStats struct {
	// WordCount is the number of Word tokens counted.
	WordCount int

	// LengthCounts is a histogram indexed by LengthBucket.
	LengthCounts [numLengthBuckets]int

	// PunctCounts is a histogram indexed by Punctuation.
	PunctCounts [numPunctClasses]int
}

// Chapter is one spine entry's worth of tokenized content.
type Chapter struct {
	// Index is the entry's position in the package spine. Indexes are
	// non-decreasing but may have gaps where spine entries yielded no
	// extractable text.
	Index int

	// Title is the chapter heading, or "Chapter N" (1-based spine
	// position) when the document has none.
	Title string

	// Words is the ordered token sequence for the chapter.
	Words []Word

	// Stats is derived from Words; it is never edited directly.
	Stats ChapterStats
}

// BookMetadata holds the package document's identifying metadata.
type BookMetadata struct {
	// Title is the first non-empty dc:title value, or "Unknown Title".
	Title string

	// Author is the first non-empty dc:creator value; empty when the
	// package declares no creator.
	Author string
}

// BookStats aggregates every chapter's statistics.
type BookStats struct {
	// TotalWords is the sum of all chapters' WordCount.
	TotalWords int

	// Aggregated is the element-wise sum of all chapters' stats.
	Aggregated ChapterStats
}

// Book is a fully parsed book. It is constructed once per Parse call and
// immutable thereafter; it holds no references into the input buffer.
type Book struct {
	Metadata BookMetadata
	Chapters []Chapter
	Stats    BookStats
}

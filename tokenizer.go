package spread

import (
	"strings"
	"unicode"
)

// DefaultMaxChunkChars is the chunk-splitting limit used by Parse.
// Callers deriving a limit from a display width typically pass
// width - 2 to ParseWithLayout instead.
const DefaultMaxChunkChars = 13

// Bounds of the accepted chunk limit; out-of-range values are clamped.
const (
	minMaxChunkChars = 10
	maxMaxChunkChars = 22
)

// clampChunkChars forces maxChunkChars into the valid range.
func clampChunkChars(maxChunkChars int) int {
	if maxChunkChars < minMaxChunkChars {
		return minMaxChunkChars
	}
	if maxChunkChars > maxMaxChunkChars {
		return maxMaxChunkChars
	}
	return maxChunkChars
}

// cleanCharCount counts the alphanumeric, apostrophe, and hyphen
// characters in s. This is the character count that length buckets are
// computed from.
func cleanCharCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			n++
		}
	}
	return n
}

// Tokenize splits text on whitespace and classifies each token into Word
// values. Tokens without any alphanumeric, apostrophe, or hyphen
// characters contribute nothing. Overlong tokens are split into display
// chunks; only the final chunk of a split token carries the token's
// trailing punctuation class. maxChunkChars is clamped into [10, 22].
func Tokenize(text string, maxChunkChars int) []Word {
	maxChunkChars = clampChunkChars(maxChunkChars)

	var words []Word
	for _, raw := range strings.Fields(text) {
		if cleanCharCount(raw) == 0 {
			continue
		}

		// Trailing punctuation is read off the original token; a split
		// re-attaches it to the last chunk only.
		punct := PunctNone
		if last, ok := lastRune(raw); ok {
			punct = punctForChar(last)
		}

		chunks := splitLongWord(raw, maxChunkChars)
		for i, chunk := range chunks {
			p := PunctNone
			if i == len(chunks)-1 {
				p = punct
			}
			words = append(words, Word{
				Text:           chunk,
				LengthBucket:   bucketForLength(cleanCharCount(chunk)),
				FollowingPunct: p,
			})
		}
	}
	return words
}

// TokenizeParagraphs tokenizes each paragraph independently and marks
// paragraph boundaries: the last word of every paragraph except the
// final one has its punctuation upgraded to PunctParagraph, unless it
// already carries comma or period punctuation.
func TokenizeParagraphs(paragraphs []string, maxChunkChars int) []Word {
	var all []Word
	for i, para := range paragraphs {
		words := Tokenize(para, maxChunkChars)
		if len(words) == 0 {
			continue
		}
		last := &words[len(words)-1]
		if i < len(paragraphs)-1 && last.FollowingPunct == PunctNone {
			last.FollowingPunct = PunctParagraph
		}
		all = append(all, words...)
	}
	return all
}

// newChapter tokenizes a chapter's paragraphs and derives its stats.
func newChapter(index int, title string, paragraphs []string, maxChunkChars int) Chapter {
	words := TokenizeParagraphs(paragraphs, maxChunkChars)
	return Chapter{
		Index: index,
		Title: title,
		Words: words,
		Stats: newChapterStats(words),
	}
}

// lastRune returns the final rune of s.
func lastRune(s string) (rune, bool) {
	var last rune
	ok := false
	for _, r := range s {
		last = r
		ok = true
	}
	return last, ok
}

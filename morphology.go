package spread

import "unicode"

// minChunkChars is the smallest useful chunk; affixes are only stripped
// when what remains is comfortably longer than this, so splitting never
// produces tiny fragments.
const minChunkChars = 3

// minSplitLetters is the minimum count of letters a token must have
// before splitting is considered. Shorter words read fine as a unit.
const minSplitLetters = 13

// prefixTable lists recognized prefixes, longest first so that longer
// matches win (e.g. "inter" before "in").
var prefixTable = []string{
	"counter", "extra", "hyper", "inter", "micro", "multi", "super", "trans",
	"ultra", "under", "anti", "auto", "mono", "over", "poly", "post", "semi",
	"tele", "dis", "mid", "mis", "non", "out", "pre", "pro", "sub", "tri",
	"de", "il", "im", "in", "ir", "re", "un",
}

// suffixTable lists recognized suffixes, longest first.
var suffixTable = []string{
	"ization", "isation", "ational", "ative", "itive", "ical", "ious", "eous",
	"tion", "sion", "ness", "ment", "able", "ible", "less", "ence", "ance",
	"ful", "ous", "ive", "ial", "ing", "ity", "ety", "ize", "ise", "ify",
	"ent", "ant", "al", "ed", "er", "ly", "ty",
}

// splitLongWord cuts an overlong word into display chunks at
// morpheme-like boundaries. Chunks are hyphen-marked on whichever sides
// continue into a neighboring chunk, e.g. ["inter-", "-national-",
// "-ization"]. Words with fewer than minSplitLetters letters, and words
// where splitting would yield a single chunk, are returned unchanged as
// a one-element slice.
func splitLongWord(word string, maxChunkChars int) []string {
	clean := make([]rune, 0, len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			clean = append(clean, r)
		}
	}
	if len(clean) < minSplitLetters {
		return []string{word}
	}

	// Per-rune lowering keeps lower aligned 1:1 with clean, which simple
	// ASCII/Unicode case mapping guarantees.
	lower := make([]rune, len(clean))
	for i, r := range clean {
		lower[i] = unicode.ToLower(r)
	}

	var chunks []string
	remaining, remainingLower := clean, lower
	isFirst := true

	// Strip one recognized prefix, keeping it as its own leading chunk,
	// but only when enough word remains after it.
	for _, prefix := range prefixTable {
		n := len(prefix)
		if hasRunePrefix(remainingLower, prefix) && len(remaining) > n+minChunkChars {
			chunks = append(chunks, string(remaining[:n])+"-")
			remaining = remaining[n:]
			remainingLower = remainingLower[n:]
			isFirst = false
			break
		}
	}

	// Likewise one recognized suffix from the tail.
	suffixLen := 0
	suffixChunk := ""
	for _, suffix := range suffixTable {
		n := len(suffix)
		if hasRuneSuffix(remainingLower, suffix) && len(remaining) > n+minChunkChars {
			suffixLen = n
			suffixChunk = "-" + string(remaining[len(remaining)-n:])
			break
		}
	}

	// Cut the middle into consecutive pieces of at most maxChunkChars.
	middle := remaining[:len(remaining)-suffixLen]
	for pos := 0; pos < len(middle); {
		end := pos + maxChunkChars
		if end > len(middle) {
			end = len(middle)
		}
		piece := string(middle[pos:end])
		last := end == len(middle)
		switch {
		case isFirst && last && suffixLen == 0:
			// Whole word in one piece; no hyphens.
		case isFirst:
			piece += "-"
		case last && suffixLen == 0:
			piece = "-" + piece
		default:
			piece = "-" + piece + "-"
		}
		chunks = append(chunks, piece)
		pos = end
		isFirst = false
	}

	if suffixLen > 0 {
		chunks = append(chunks, suffixChunk)
	}

	// A lone chunk means the split bought nothing; keep the original
	// token with its punctuation and digits intact.
	if len(chunks) <= 1 {
		return []string{word}
	}
	return chunks
}

// hasRunePrefix reports whether rs starts with the ASCII string prefix.
func hasRunePrefix(rs []rune, prefix string) bool {
	if len(rs) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if rs[i] != rune(prefix[i]) {
			return false
		}
	}
	return true
}

// hasRuneSuffix reports whether rs ends with the ASCII string suffix.
func hasRuneSuffix(rs []rune, suffix string) bool {
	if len(rs) < len(suffix) {
		return false
	}
	off := len(rs) - len(suffix)
	for i := 0; i < len(suffix); i++ {
		if rs[off+i] != rune(suffix[i]) {
			return false
		}
	}
	return true
}

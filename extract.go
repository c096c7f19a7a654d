package spread

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// paragraphBreak separates paragraphs in extracted text.
const paragraphBreak = "\n\n"

// blockTags is the set of tags whose start inserts a paragraph break
// during text extraction.
var blockTags = map[atom.Atom]bool{
	atom.P:   true,
	atom.Div: true,
	atom.Br:  true,
	atom.H1:  true,
	atom.H2:  true,
	atom.H3:  true,
	atom.H4:  true,
	atom.H5:  true,
	atom.H6:  true,
}

// skipTags is the set of tags whose text content is discarded even when
// nested inside <body>.
var skipTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
	atom.Head:   true,
}

var selfClosingSkipTagPattern = regexp.MustCompile(`(?is)<(script|style)\b([^>]*)/>`)

// normalizeSelfClosingSkipTags rewrites self-closing <script/> and
// <style/> into open/close pairs. The HTML tokenizer treats these as raw
// text elements and would otherwise swallow everything up to a closing
// tag that never comes.
func normalizeSelfClosingSkipTags(data []byte) []byte {
	if !selfClosingSkipTagPattern.Match(data) {
		return data
	}
	return selfClosingSkipTagPattern.ReplaceAll(data, []byte(`<$1$2></$1>`))
}

// Buffer states for paragraph-break and word-spacing decisions.
const (
	atStart    = iota // nothing written yet
	afterBreak        // buffer ends with a paragraph break
	afterText         // buffer ends mid-paragraph
)

// extractText streams a chapter document's markup and accumulates its
// plain reading text. Only content inside <body> is kept; script, style,
// and head content is discarded; block-level tags insert paragraph
// breaks. Malformed markup never fails: extraction stops at the first
// tokenizer error and returns whatever was accumulated. The result is
// NFC-normalized so downstream affix matching sees composed forms.
func extractText(data []byte) string {
	data = normalizeSelfClosingSkipTags(stripBOM(data))
	tokenizer := html.NewTokenizer(bytes.NewReader(data))

	var buf strings.Builder
	state := atStart
	inBody := false
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// EOF or malformed markup; either way, best effort.
			return norm.NFC.String(buf.String())

		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			a := atom.Lookup(tn)
			if a == atom.Body {
				inBody = true
				continue
			}
			if !inBody {
				continue
			}
			if skipTags[a] {
				skipDepth++
			}
			if blockTags[a] && state == afterText {
				buf.WriteString(paragraphBreak)
				state = afterBreak
			}

		case html.SelfClosingTagToken:
			tn, _ := tokenizer.TagName()
			if inBody && atom.Lookup(tn) == atom.Br {
				buf.WriteString(paragraphBreak)
				state = afterBreak
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			a := atom.Lookup(tn)
			if a == atom.Body {
				inBody = false
			} else if skipTags[a] && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if !inBody || skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if state == afterText {
				// Keep words apart across inline markup boundaries.
				buf.WriteByte(' ')
			}
			buf.WriteString(text)
			state = afterText
		}
	}
}

// extractParagraphs splits extracted text into trimmed, non-empty
// paragraphs in document order.
func extractParagraphs(data []byte) []string {
	text := extractText(data)
	if text == "" {
		return nil
	}
	segments := strings.Split(text, paragraphBreak)
	paragraphs := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			paragraphs = append(paragraphs, seg)
		}
	}
	return paragraphs
}

// extractTitle scans a chapter document for a display title. The first
// non-empty <h1> or <h2> text wins outright; the first non-empty <title>
// text is remembered and used only when no heading exists. Returns ""
// when neither is found, letting the caller fall back to "Chapter N".
func extractTitle(data []byte) string {
	data = normalizeSelfClosingSkipTags(stripBOM(data))
	tokenizer := html.NewTokenizer(bytes.NewReader(data))

	titleText := ""
	inTitle := false
	inHeading := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return titleText

		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			switch atom.Lookup(tn) {
			case atom.Title:
				inTitle = true
			case atom.H1, atom.H2:
				inHeading = true
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			switch atom.Lookup(tn) {
			case atom.Title:
				inTitle = false
			case atom.H1, atom.H2:
				inHeading = false
			}

		case html.TextToken:
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if inHeading {
				return norm.NFC.String(text)
			}
			if inTitle && titleText == "" {
				// First title wins, but headings still override, so
				// keep scanning.
				titleText = norm.NFC.String(text)
				inTitle = false
			}
		}
	}
}

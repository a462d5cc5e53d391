package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/match"
)

const (
	// contextPadding is how many bytes of surrounding text each window keeps.
	contextPadding = 100
	// maxContextWindows caps how many windows are joined into the preview.
	maxContextWindows = 5
	// relevanceSaturation is the window count at which lexical relevance hits 1.0.
	relevanceSaturation = 10

	contextSeparator = " ... "
	minWordLength    = 3
)

// normalize lower-cases the query and extracts significant words.
// Tokens shorter than three bytes are noise and dropped. Total function:
// an empty query yields an empty word list (callers reject empty queries).
func normalize(query string) (string, []string) {
	lower := strings.ToLower(query)
	fields := strings.Fields(lower)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) >= minWordLength {
			words = append(words, w)
		}
	}
	return lower, words
}

// foldContent lower-cases content for matching and records, for every byte
// of the lowered text, the start offset of the original rune it came from.
// Case folding can change a rune's byte length (e.g. U+023A grows, U+0130
// shrinks), so match indexes in the lowered text must not slice the
// original directly.
func foldContent(content string) (string, []int) {
	var b strings.Builder
	b.Grow(len(content))
	offsets := make([]int, 0, len(content)+1)
	for i, r := range content {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(content))
	return b.String(), offsets
}

// matchLexical scans one document for the full query phrase and each
// significant word. Every first occurrence at a new start index captures a
// context window; the window count saturates into a [0,1] relevance score.
// Windows are cut on original rune boundaries via the fold offset table.
func matchLexical(doc *domdoc.Document, queryLower string, words []string) (match.Hit, bool) {
	content := doc.Content()
	contentLower, offsets := foldContent(content)

	seen := make(map[int]struct{})
	var windows []string

	capture := func(idx, matchLen int) {
		if _, dup := seen[idx]; dup {
			return
		}
		seen[idx] = struct{}{}
		start := idx - contextPadding
		if start < 0 {
			start = 0
		}
		end := idx + matchLen + contextPadding
		if end > len(contentLower) {
			end = len(contentLower)
		}
		windows = append(windows, content[offsets[start]:offsets[end]])
	}

	// Full-phrase window first, then per-word windows in query order.
	if idx := strings.Index(contentLower, queryLower); idx >= 0 {
		capture(idx, len(queryLower))
	}
	for _, w := range words {
		if idx := strings.Index(contentLower, w); idx >= 0 {
			capture(idx, len(w))
		}
	}

	if len(windows) == 0 {
		return match.Hit{}, false
	}

	count := len(windows)
	relevance := float64(count) / relevanceSaturation
	if relevance > 1 {
		relevance = 1
	}

	preview := windows
	if len(preview) > maxContextWindows {
		preview = preview[:maxContextWindows]
	}

	return match.NewHit(doc.ID(), relevance, strings.Join(preview, contextSeparator), count), true
}

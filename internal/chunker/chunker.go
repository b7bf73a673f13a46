package chunker

import (
	"fmt"
	"unicode/utf8"
)

// Search windows (in characters) for pulling a chunk end back to a natural
// boundary.
const (
	sentenceSearchWindow   = 200
	whitespaceSearchWindow = 100
)

// sentenceEnd holds the characters treated as sentence terminators. The
// full-width forms cover CJK text.
var sentenceEnd = map[rune]bool{
	'。': true, '！': true, '？': true,
	'.': true, '!': true, '?': true, '\n': true,
}

var whitespace = map[rune]bool{' ': true, '\t': true, '\n': true}

// IsSentenceEnd reports whether r terminates a sentence. The merge step uses
// the same marker set when trimming duplicated overlap.
func IsSentenceEnd(r rune) bool {
	return sentenceEnd[r]
}

// Chunk is a bounded contiguous slice of the original input text. Start and
// End are byte offsets into the original string; Index preserves source
// order, which the merge step depends on.
type Chunk struct {
	Index int
	Start int
	End   int
	Text  string
}

// Splitter cuts text into chunks of at most maxChunkSize characters with
// overlap characters shared between consecutive chunks.
type Splitter struct {
	maxChunkSize int
	overlap      int
	enabled      bool
}

// New validates the chunking parameters. The overlap must stay below the
// chunk size, otherwise the cursor could not advance between chunks.
func New(maxChunkSize, overlap int, enabled bool) (*Splitter, error) {
	if maxChunkSize <= 0 {
		return nil, fmt.Errorf("max chunk size must be positive, got %d", maxChunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must not be negative, got %d", overlap)
	}
	if overlap >= maxChunkSize {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than max chunk size %d", overlap, maxChunkSize)
	}
	return &Splitter{maxChunkSize: maxChunkSize, overlap: overlap, enabled: enabled}, nil
}

// Split cuts text into ordered chunks whose ranges cover the whole input.
// When chunking is disabled or the text fits into one chunk, a single chunk
// covering the entire text is returned. Sizes are measured in characters;
// the reported offsets are byte positions into the original string.
func (s *Splitter) Split(text string) []Chunk {
	runes := []rune(text)
	n := len(runes)
	if !s.enabled || n <= s.maxChunkSize {
		return []Chunk{{Index: 0, Start: 0, End: len(text), Text: text}}
	}

	// Byte offset of each rune boundary, so chunks can report positions
	// into the original string.
	offsets := make([]int, n+1)
	for i, r := range runes {
		offsets[i+1] = offsets[i] + utf8.RuneLen(r)
	}

	var chunks []Chunk
	start := 0
	for start < n {
		end := start + s.maxChunkSize
		if end >= n {
			end = n
		} else {
			end = findBoundary(runes, start, end)
		}

		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: offsets[start],
			End:   offsets[end],
			Text:  string(runes[start:end]),
		})

		if end == n {
			break
		}
		start = end - s.overlap
		if start < 0 {
			start = 0
		}
	}
	return chunks
}

// findBoundary pulls end back to just after the nearest sentence terminator
// within the sentence search window, falling back to whitespace within the
// smaller whitespace window. A mid-word cut is accepted when neither search
// succeeds. The caller guarantees end < len(runes).
func findBoundary(runes []rune, start, end int) int {
	low := end - sentenceSearchWindow
	if low < start {
		low = start
	}
	for i := end; i > low; i-- {
		if sentenceEnd[runes[i]] {
			return i + 1
		}
	}

	low = end - whitespaceSearchWindow
	if low < start {
		low = start
	}
	for i := end; i > low; i-- {
		if whitespace[runes[i]] {
			return i + 1
		}
	}
	return end
}

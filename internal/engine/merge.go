package engine

import (
	"strings"

	"codeberg.org/snonux/polytrans/internal/chunker"
)

// mergeChunks joins translated chunks back into one document. Consecutive
// source chunks share overlap characters, so the head of every translated
// chunk after the first repeats material from the previous one. The head is
// trimmed at the last sentence terminator within the overlap window; when no
// terminator is found there, half the overlap is dropped as an estimate. A
// chunk no longer than the overlap is appended verbatim rather than cut
// into.
func mergeChunks(parts []string, overlap int) string {
	if len(parts) == 0 {
		return ""
	}

	var merged strings.Builder
	merged.WriteString(parts[0])

	for _, part := range parts[1:] {
		runes := []rune(part)
		if len(runes) <= overlap {
			merged.WriteString(part)
			continue
		}

		cut := -1
		for i := overlap - 1; i >= 0; i-- {
			if chunker.IsSentenceEnd(runes[i]) {
				cut = i + 1
				break
			}
		}
		if cut < 0 {
			cut = overlap / 2
		}
		merged.WriteString(string(runes[cut:]))
	}
	return merged.String()
}

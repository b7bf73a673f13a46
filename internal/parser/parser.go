package parser

import "strings"

// Marker tokens the model is asked to emit around its output.
const (
	translationMarker = "【翻译结果】"
	summaryMarker     = "【摘要】"
)

// summarySeparators are tried in priority order when no markers are present.
var summarySeparators = []string{"\n摘要：", "\n摘要:", "\n摘要", "\nSummary:", "\nSummary", "---"}

// noSummaryTokens mark an explicitly empty summary slot.
var noSummaryTokens = map[string]bool{"无": true, "none": true, "None": true}

// extractFunc attempts one extraction strategy. ok reports whether the
// strategy's precondition held; only then are the results used.
type extractFunc func(resp string, wantSummary bool) (translated, summary string, ok bool)

// strategies are attempted in order; the first whose precondition holds
// wins. Each is independently testable.
var strategies = []struct {
	name    string
	extract extractFunc
}{
	{"marker", extractMarker},
	{"plain", extractPlain},
	{"separator", extractSeparator},
	{"last-line", extractLastLine},
	{"whole", extractWhole},
}

// Parse extracts the translation and, when requested, the summary from a raw
// model response. Escaped whitespace sequences are normalized first.
func Parse(resp string, wantSummary bool) (string, string) {
	resp = normalizeEscapes(resp)
	for _, s := range strategies {
		if translated, summary, ok := s.extract(resp, wantSummary); ok {
			return translated, summary
		}
	}
	// The whole-response strategy always matches.
	return strings.TrimSpace(resp), ""
}

// normalizeEscapes turns literal escape sequences into real characters.
// Some models emit "\n" as two characters instead of a newline.
func normalizeEscapes(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}

// extractMarker handles the explicit 【翻译结果】/【摘要】 output format. A
// summary marked as empty ("无"/"none") is cleared when none was requested.
func extractMarker(resp string, wantSummary bool) (string, string, bool) {
	_, rest, found := strings.Cut(resp, translationMarker)
	if !found {
		return "", "", false
	}
	trans, sum, hasSummary := strings.Cut(rest, summaryMarker)
	translated := strings.TrimSpace(trans)
	if !hasSummary {
		return translated, "", true
	}
	summary := strings.TrimSpace(sum)
	if !wantSummary && noSummaryTokens[summary] {
		summary = ""
	}
	return translated, summary, true
}

// extractPlain applies when no summary was requested: the whole trimmed
// response is the translation.
func extractPlain(resp string, wantSummary bool) (string, string, bool) {
	if wantSummary {
		return "", "", false
	}
	return strings.TrimSpace(resp), "", true
}

// extractSeparator splits on the first known summary separator present.
func extractSeparator(resp string, _ bool) (string, string, bool) {
	for _, sep := range summarySeparators {
		if before, after, found := strings.Cut(resp, sep); found {
			return strings.TrimSpace(before), strings.TrimSpace(after), true
		}
	}
	return "", "", false
}

// extractLastLine treats everything but the last line as the translation and
// the last line as the summary. Known to misfire on short multi-paragraph
// translations; accepted limitation.
func extractLastLine(resp string, _ bool) (string, string, bool) {
	lines := strings.Split(strings.TrimSpace(resp), "\n")
	if len(lines) < 2 {
		return "", "", false
	}
	translated := strings.TrimSpace(strings.Join(lines[:len(lines)-1], "\n"))
	return translated, strings.TrimSpace(lines[len(lines)-1]), true
}

// extractWhole is the final fallback: the whole response is the translation.
func extractWhole(resp string, _ bool) (string, string, bool) {
	return strings.TrimSpace(resp), "", true
}

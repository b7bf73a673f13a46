package parser

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		resp        string
		wantSummary bool
		wantText    string
		wantSum     string
	}{
		{
			name:        "marker format with summary",
			resp:        "【翻译结果】Hello world【摘要】A greeting",
			wantSummary: true,
			wantText:    "Hello world",
			wantSum:     "A greeting",
		},
		{
			name:        "marker format without summary marker",
			resp:        "【翻译结果】Hello world",
			wantSummary: false,
			wantText:    "Hello world",
			wantSum:     "",
		},
		{
			name:        "marker format with empty summary slot",
			resp:        "【翻译结果】Hello world【摘要】无",
			wantSummary: false,
			wantText:    "Hello world",
			wantSum:     "",
		},
		{
			name:        "marker format keeps explicit summary when requested",
			resp:        "【翻译结果】Hello world【摘要】无",
			wantSummary: true,
			wantText:    "Hello world",
			wantSum:     "无",
		},
		{
			name:        "plain response without summary request",
			resp:        "Bonjour le monde",
			wantSummary: false,
			wantText:    "Bonjour le monde",
			wantSum:     "",
		},
		{
			name:        "separator based split",
			resp:        "Translated body here\n摘要：short recap",
			wantSummary: true,
			wantText:    "Translated body here",
			wantSum:     "short recap",
		},
		{
			name:        "english separator",
			resp:        "Translated body here\nSummary: short recap",
			wantSummary: true,
			wantText:    "Translated body here",
			wantSum:     "short recap",
		},
		{
			name:        "last line heuristic",
			resp:        "Line one\nLine two\nShort summary",
			wantSummary: true,
			wantText:    "Line one\nLine two",
			wantSum:     "Short summary",
		},
		{
			name:        "single line with summary requested",
			resp:        "Only one line",
			wantSummary: true,
			wantText:    "Only one line",
			wantSum:     "",
		},
		{
			name:        "escaped newlines are normalized",
			resp:        `Line one\nLine two\nShort summary`,
			wantSummary: true,
			wantText:    "Line one\nLine two",
			wantSum:     "Short summary",
		},
		{
			name:        "surrounding whitespace is trimmed",
			resp:        "  Bonjour le monde  \n",
			wantSummary: false,
			wantText:    "Bonjour le monde",
			wantSum:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotSum := Parse(tt.resp, tt.wantSummary)
			if gotText != tt.wantText {
				t.Errorf("translated = %q, want %q", gotText, tt.wantText)
			}
			if gotSum != tt.wantSum {
				t.Errorf("summary = %q, want %q", gotSum, tt.wantSum)
			}
		})
	}
}

func TestExtractMarker_PreconditionFails(t *testing.T) {
	if _, _, ok := extractMarker("no markers here", true); ok {
		t.Error("marker strategy must not match without the translation marker")
	}
}

func TestExtractSeparator_Priority(t *testing.T) {
	// Both a Chinese and an English separator present; the Chinese one has
	// higher priority.
	resp := "body\n摘要：first\nSummary: second"
	translated, summary, ok := extractSeparator(resp, true)
	if !ok {
		t.Fatal("separator strategy should match")
	}
	if translated != "body" {
		t.Errorf("translated = %q, want %q", translated, "body")
	}
	if summary != "first\nSummary: second" {
		t.Errorf("summary = %q", summary)
	}
}

func TestExtractLastLine_SingleLine(t *testing.T) {
	if _, _, ok := extractLastLine("just one line", true); ok {
		t.Error("last-line strategy must not match single-line responses")
	}
}

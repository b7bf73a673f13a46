package engine

import "testing"

func TestMergeChunks(t *testing.T) {
	tests := []struct {
		name    string
		parts   []string
		overlap int
		want    string
	}{
		{
			name:    "no parts",
			parts:   nil,
			overlap: 10,
			want:    "",
		},
		{
			name:    "single part unchanged",
			parts:   []string{"Just one translated chunk."},
			overlap: 10,
			want:    "Just one translated chunk.",
		},
		{
			name:    "cut at sentence end in window",
			parts:   []string{"First sentence. Tail text ", "xt. Continuation here."},
			overlap: 10,
			want:    "First sentence. Tail text  Continuation here.",
		},
		{
			name:    "whitespace after the cut point survives",
			parts:   []string{"First paragraph.", "ph.\n\nSecond paragraph."},
			overlap: 3,
			want:    "First paragraph.\n\nSecond paragraph.",
		},
		{
			name:    "half overlap fallback without sentence end",
			parts:   []string{"abcdefghij", "1234567890rest"},
			overlap: 10,
			want:    "abcdefghij67890rest",
		},
		{
			name:    "chunk no longer than overlap appended verbatim",
			parts:   []string{"Head.", "ok"},
			overlap: 10,
			want:    "Head.ok",
		},
		{
			name:    "chunk exactly overlap sized appended verbatim",
			parts:   []string{"Complete sentence.", "ce. "},
			overlap: 4,
			want:    "Complete sentence.ce. ",
		},
		{
			name:    "cjk sentence markers",
			parts:   []string{"第一句话。后半部分", "部分。第二句话。"},
			overlap: 4,
			want:    "第一句话。后半部分第二句话。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeChunks(tt.parts, tt.overlap); got != tt.want {
				t.Errorf("mergeChunks(%q, %d) = %q, want %q", tt.parts, tt.overlap, got, tt.want)
			}
		})
	}
}

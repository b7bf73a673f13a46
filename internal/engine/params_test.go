package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlossary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{"empty", "", nil},
		{"whitespace only", "  ", nil},
		{"json object", `{"kernel": "内核", "thread": "线程"}`, map[string]string{"kernel": "内核", "thread": "线程"}},
		{"single pair", "kernel=内核", map[string]string{"kernel": "内核"}},
		{"multiple pairs", "kernel=内核, thread=线程", map[string]string{"kernel": "内核", "thread": "线程"}},
		{"trailing comma", "kernel=内核,", map[string]string{"kernel": "内核"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGlossary(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGlossary_Rejections(t *testing.T) {
	for _, input := range []string{
		`{"broken": }`,
		"no-separator",
		"=value",
		"key=",
	} {
		_, err := ParseGlossary(input)
		assert.Error(t, err, "input %q", input)
	}
}

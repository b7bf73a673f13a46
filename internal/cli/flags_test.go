package cli

import "testing"

func TestSummaryFlag(t *testing.T) {
	tests := []struct {
		name      string
		summary   bool
		noSummary bool
		want      *bool
	}{
		{"neither set", false, false, nil},
		{"summary", true, false, boolPtr(true)},
		{"no-summary", false, true, boolPtr(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Flags{Summary: tt.summary, NoSummary: tt.noSummary}
			got := f.SummaryFlag()
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("SummaryFlag() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("SummaryFlag() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestDeleteFlag(t *testing.T) {
	f := &Flags{}
	if f.DeleteFlag() != nil {
		t.Error("unset delete flags should yield nil")
	}

	f = &Flags{DeleteAfter: true}
	if got := f.DeleteFlag(); got == nil || !*got {
		t.Error("delete-after should yield true")
	}

	f = &Flags{NoDelete: true}
	if got := f.DeleteFlag(); got == nil || *got {
		t.Error("no-delete should yield false")
	}
}

func boolPtr(b bool) *bool { return &b }

package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Hello", "hello", true},
		{"hello", "hello", true},
		{"HELLO", "hello", true},
		{"", "", true},
		{"Hello!", "", false},
		{"don't", "", false},
		{"a1", "", false},
		{"1a", "", false},
		{"naïve", "", false},
		{"two words", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeWord(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeWord(%q) = (%q, %v), want (%q, %v)",
					tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  the\tcat  sat\n")
	want := []string{"the", "cat", "sat"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
	if n := len(Tokens("   ")); n != 0 {
		t.Errorf("blank line gave %d tokens", n)
	}
}

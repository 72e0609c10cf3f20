package utils

import (
	"reflect"
	"testing"
)

func runeWidth(s string) int { return len([]rune(s)) }

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"wraps", "Details about the selected card", 12, []string{"Details", "about the", "selected", "card"}},
		{"long word", "supercalifragilistic ok", 5, []string{"supercalifragilistic", "ok"}},
		{"paragraphs", "a b\n\nc", 10, []string{"a b", "", "c"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapText(c.text, c.width, runeWidth)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("WrapText(%q, %d) = %q, want %q", c.text, c.width, got, c.want)
			}
		})
	}
}

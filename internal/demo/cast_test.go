package demo

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second, Annotation: "note \"quoted\""},
		{Content: "four"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, CastHeader{Width: 80, Height: 24, Title: "test"}); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		`{"version":2,"width":80,"height":24,"title":"test"}`,
		`[0,"o","\u001b[H\u001b[2Jone\r\ntwo"]`,
		`[0.5,"m","note \"quoted\""]`,
		`[0.5,"o","\u001b[H\u001b[2Jthree"]`,
		`[1.5,"o","\u001b[H\u001b[2Jfour"]`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %s, want %s", i, lines[i], want[i])
		}
	}
}

func TestToCRLF(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a\nb", "a\r\nb"},
		{"a\r\nb", "a\r\nb"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := toCRLF(tt.in); got != tt.want {
			t.Errorf("toCRLF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

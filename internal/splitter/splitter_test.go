package splitter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSplit_DuplicatesInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "hello\nworld\n"},
		{"binary-ish", "\x00\x01\x02ff\xff"},
		{"larger than one chunk", strings.Repeat("0123456789abcdef", 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a, b bytes.Buffer
			if err := Split(strings.NewReader(tt.input), &a, &b); err != nil {
				t.Fatalf("Split error: %v", err)
			}
			if a.String() != tt.input {
				t.Errorf("first sink got %d bytes, want %d", a.Len(), len(tt.input))
			}
			if b.String() != tt.input {
				t.Errorf("second sink got %d bytes, want %d", b.Len(), len(tt.input))
			}
		})
	}
}

func TestSplit_OneByteReads(t *testing.T) {
	var a, b bytes.Buffer
	src := iotest.OneByteReader(strings.NewReader("abc"))
	if err := Split(src, &a, &b); err != nil {
		t.Fatalf("Split error: %v", err)
	}
	if a.String() != "abc" || b.String() != "abc" {
		t.Errorf("sinks = %q / %q, want %q", a.String(), b.String(), "abc")
	}
}

func TestSplit_ReadErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	var a, b bytes.Buffer
	src := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(boom))
	err := Split(src, &a, &b)
	if !errors.Is(err, boom) {
		t.Fatalf("Split error = %v, want wrapped %v", err, boom)
	}
	// Bytes written before the failure stay.
	if a.String() != "partial" || b.String() != "partial" {
		t.Errorf("sinks = %q / %q, want %q", a.String(), b.String(), "partial")
	}
}

type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestSplit_WriteErrorPropagates(t *testing.T) {
	boom := errors.New("sink closed")
	var healthy bytes.Buffer
	err := Split(strings.NewReader("data"), failWriter{err: boom}, &healthy)
	if !errors.Is(err, boom) {
		t.Fatalf("Split error = %v, want wrapped %v", err, boom)
	}
}

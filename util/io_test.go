package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"shiftcrack/internal/errors"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScanLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", DefaultBufSize*2)
	got, err := ScanLines(strings.NewReader(long + "\nshort\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || len(got[0]) != len(long) {
		t.Errorf("long line not read intact: %d lines", len(got))
	}
}

func TestScanLines_HugeLine(t *testing.T) {
	huge := strings.Repeat("y", 5*1024*1024)
	path := filepath.Join(t.TempDir(), "huge.txt")
	if err := os.WriteFile(path, []byte("first\n"+huge+"\r\nlast"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 3 || got[0] != "first" || got[1] != huge || got[2] != "last" {
		t.Errorf("huge line not read intact: %d lines", len(got))
	}
}

func TestWriteThenReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	lines := []string{"Uryyb", "", "Jbeyq!"}

	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), "Uryyb\n\nJbeyq!\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	back, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if diff := cmp.Diff(lines, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrResourceUnavailable) {
		t.Errorf("expected resource error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is never a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is never a terminal")
	}
}

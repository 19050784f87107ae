package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsAndReturnsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Prompt", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected trimmed line, got %q", got)
	}
	if !strings.Contains(out.String(), "Prompt") {
		t.Fatalf("expected prompt in output, got %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Prompt", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "partial" {
		t.Fatalf("expected partial line, got %q", got)
	}
}

func TestGetSimpleText_EOFWithoutInputFails(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(r, "Prompt", &out); err == nil {
		t.Fatalf("expected error on empty EOF")
	}
}

func TestGetPassword_UsesSeamAndPrintsPrompt(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("expected stubbed password, got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("expected prompt in output, got %q", out.String())
	}
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		r := bufio.NewReader(strings.NewReader(tt.input))
		var out bytes.Buffer
		if got := GetConfirmation(r, "Sure?", &out); got != tt.want {
			t.Fatalf("input %q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

package util

import "testing"

func TestParseSize_Units(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"25MB", 25 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"100", 100},
		{" 10mb ", 10 * 1024 * 1024},
	}
	for _, c := range cases {
		if got := ParseSize(c.in, 0); got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSize_Invalid(t *testing.T) {
	if got := ParseSize("not-a-size", 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
	if got := ParseSize("", 7); got != 7 {
		t.Errorf("expected default 7, got %d", got)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("sk-abcdef123456", 5); got != "sk-ab***" {
		t.Errorf("unexpected mask: %s", got)
	}
	if got := MaskSecret("ab", 5); got != "***" {
		t.Errorf("short secrets should be fully masked, got %s", got)
	}
}

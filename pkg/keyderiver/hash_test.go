package keyderiver

import (
	"errors"
	"testing"
)

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want HashAlgorithm
	}{
		{"", SHA256},
		{"sha256", SHA256},
		{"SHA-256", SHA256},
		{" blake2b ", BLAKE2b256},
		{"blake2b-256", BLAKE2b256},
	}
	for _, tt := range tests {
		got, err := ParseHashAlgorithm(tt.in)
		if err != nil {
			t.Fatalf("ParseHashAlgorithm(%q) err: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseHashAlgorithm(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseHashAlgorithmUnknown(t *testing.T) {
	_, err := ParseHashAlgorithm("md5")
	if !errors.Is(err, ErrUnknownHash) {
		t.Fatalf("expected ErrUnknownHash, got %v", err)
	}
}

func TestComputeUnknownHash(t *testing.T) {
	_, err := Compute(nil, 0, "", HashAlgorithm(42))
	if !errors.Is(err, ErrUnknownHash) {
		t.Fatalf("expected ErrUnknownHash, got %v", err)
	}
	if HashAlgorithm(42).String() != "unknown" {
		t.Fatalf("unexpected name %q", HashAlgorithm(42).String())
	}
}

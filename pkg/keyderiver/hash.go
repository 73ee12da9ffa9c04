package keyderiver

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm selects the 256-bit hash used to compress the derivation input.
type HashAlgorithm int

const (
	// SHA256 is the default.
	SHA256 HashAlgorithm = iota
	// BLAKE2b256 is unkeyed BLAKE2b with a 32-byte digest.
	BLAKE2b256
)

func (a HashAlgorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case BLAKE2b256:
		return "blake2b-256"
	default:
		return "unknown"
	}
}

// ParseHashAlgorithm maps a case-insensitive name to a HashAlgorithm. An
// empty name selects SHA256.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256", "sha-256":
		return SHA256, nil
	case "blake2b", "blake2b-256":
		return BLAKE2b256, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownHash)
	}
}

func (a HashAlgorithm) new() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case BLAKE2b256:
		// a nil key never fails
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("hash algorithm %d: %w", int(a), ErrUnknownHash)
	}
}

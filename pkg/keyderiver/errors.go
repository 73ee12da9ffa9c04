package keyderiver

import "github.com/pkg/errors"

var (
	// ErrInvalidLength is returned for a negative key length.
	ErrInvalidLength = errors.New("key length must not be negative")

	// ErrEntropyUnavailable is returned when the random source cannot supply
	// the full amount of bytes. It is never recovered from with a weaker source.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrUnknownHash is returned for a hash name or value outside HashAlgorithm.
	ErrUnknownHash = errors.New("unknown hash algorithm")
)

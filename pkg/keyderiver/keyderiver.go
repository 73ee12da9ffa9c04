// Package keyderiver derives opaque URL-safe keys by hashing fresh OS
// entropy, a nanosecond timestamp and a secret salt.
//
// The deriver holds no mutable state: a single *KeyDeriver may be shared by
// any number of goroutines.
package keyderiver

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"saltkey/pkg/define"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EncodedLength is the size of a 32-byte digest in unpadded URL-safe base64.
const EncodedLength = 43

type KeyDeriver struct {
	salt    string
	algo    HashAlgorithm
	entropy io.Reader
	clock   func() time.Time
}

type Option func(*KeyDeriver)

// WithEntropy replaces crypto/rand.Reader. Only tests should need this.
// A nil reader keeps the default.
func WithEntropy(r io.Reader) Option {
	return func(d *KeyDeriver) {
		if r != nil {
			d.entropy = r
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(d *KeyDeriver) {
		if clock != nil {
			d.clock = clock
		}
	}
}

func WithHash(algo HashAlgorithm) Option {
	return func(d *KeyDeriver) {
		d.algo = algo
	}
}

// New returns a deriver bound to salt. The salt is used verbatim, an empty
// string included; resolving the salt from configuration is the caller's job.
func New(salt string, opts ...Option) *KeyDeriver {
	d := &KeyDeriver{
		salt:    salt,
		algo:    SHA256,
		entropy: rand.Reader,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDefault returns a deriver using define.DefaultSalt, which is public.
func NewDefault(opts ...Option) *KeyDeriver {
	return New(define.DefaultSalt, opts...)
}

func (d *KeyDeriver) Salt() string {
	return d.salt
}

func (d *KeyDeriver) Algorithm() HashAlgorithm {
	return d.algo
}

// Derive returns a key of at most length characters drawn from the URL-safe
// base64 alphabet. Lengths above EncodedLength yield the full encoding.
func (d *KeyDeriver) Derive(length int) (string, error) {
	if length < 0 {
		return "", errors.Wrapf(ErrInvalidLength, "got %d", length)
	}

	random := make([]byte, define.RandomBytesSize)
	if _, err := io.ReadFull(d.entropy, random); err != nil {
		return "", errors.Wrapf(ErrEntropyUnavailable, "read %d random bytes: %v", define.RandomBytesSize, err)
	}

	key, err := compute(random, d.clock().UnixNano(), d.salt, d.algo)
	if err != nil {
		return "", err
	}

	logrus.Debugf("derived key with %s, truncating %d characters to %d", d.algo, len(key), length)
	return Truncate(key, length), nil
}

func (d *KeyDeriver) DeriveDefault() (string, error) {
	return d.Derive(define.DefaultKeyLength)
}

// Compute hashes random ++ decimal(nanos) ++ salt and returns the full
// unpadded URL-safe base64 encoding of the digest.
func Compute(random []byte, nanos int64, salt string, algo HashAlgorithm) (string, error) {
	return compute(random, nanos, salt, algo)
}

func compute(random []byte, nanos int64, salt string, algo HashAlgorithm) (string, error) {
	h, err := algo.new()
	if err != nil {
		return "", err
	}

	// hash.Hash writes never return an error
	_, _ = h.Write(random)
	_, _ = h.Write([]byte(strconv.FormatInt(nanos, 10)))
	_, _ = h.Write([]byte(salt))

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), nil
}

// Truncate keeps the first length characters of key. Negative lengths are
// treated as zero; Derive rejects them before getting here.
func Truncate(key string, length int) string {
	if length < 0 {
		return ""
	}
	if length >= len(key) {
		return key
	}
	return key[:length]
}

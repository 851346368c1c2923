// Package secret generates the wallet master secret that is written on paper.
package secret

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	// UnitBits is the entropy of one 7-character hex block.
	UnitBits = 28

	// DefaultBits gives 56 characters, eight blocks of seven.
	DefaultBits = 8 * UnitBits
)

// ErrInvalidBitLength is returned for a bit length that is not a positive
// multiple of UnitBits.
var ErrInvalidBitLength = errors.New("invalid secret bit length")

// Secret is the lowercase hex text of the master secret. It is never
// persisted by this module.
type Secret string

// Bytes returns the text as the KDF password. Callers should clear it.
func (s Secret) Bytes() []byte {
	return []byte(s)
}

// Bits returns the entropy carried by the text.
func (s Secret) Bits() int {
	return len(s) * 4
}

// Generate reads bits of entropy from src.
func Generate(src io.Reader, bits int) (Secret, error) {
	if bits <= 0 || bits%UnitBits != 0 {
		return "", fmt.Errorf("%w: %d is not a positive multiple of %d", ErrInvalidBitLength, bits, UnitBits)
	}

	raw := make([]byte, (bits+7)/8)
	defer clear(raw)
	if _, err := io.ReadFull(src, raw); err != nil {
		return "", fmt.Errorf("failed to read randomness: %w", err)
	}

	text := make([]byte, hex.EncodedLen(len(raw)))
	defer clear(text)
	hex.Encode(text, raw)
	return Secret(text[:bits/4]), nil
}

// Parse checks that text looks like a generated secret.
func Parse(text string) (Secret, error) {
	if len(text) == 0 || (len(text)*4)%UnitBits != 0 {
		return "", fmt.Errorf("%w: %d characters", ErrInvalidBitLength, len(text))
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("invalid secret character %q at %d", c, i)
		}
	}
	return Secret(text), nil
}

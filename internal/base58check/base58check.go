// Package base58check encodes versioned payloads as Base58 text with a
// 4-byte double-SHA256 checksum, as used for addresses and private keys.
package base58check

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/AlexZinkM/cold-wallet/internal/checksum"
)

var (
	// ErrMalformed is returned when the text cannot hold a value of the
	// requested width at all.
	ErrMalformed = errors.New("malformed base58check text")

	// ErrChecksumMismatch is returned by Decoded.Err for a failed checksum.
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
)

// Decoded holds the fields of a decoded string. The fields are filled in
// even when Valid is false.
type Decoded struct {
	Version  byte
	Payload  []byte
	Checksum [checksum.Size4]byte
	Valid    bool
}

// Err returns ErrChecksumMismatch when the checksum did not verify.
func (d Decoded) Err() error {
	if d.Valid {
		return nil
	}
	return ErrChecksumMismatch
}

// Encode returns base58(version || payload || checksum4(version || payload)).
// Each leading zero byte is written as a '1'.
func Encode(version byte, payload []byte) string {
	checked := make([]byte, 0, 1+len(payload)+checksum.Size4)
	checked = append(checked, version)
	checked = append(checked, payload...)
	sum := checksum.Checksum4(checked)
	checked = append(checked, sum[:]...)
	return base58.Encode(checked)
}

// Decode parses text holding a payload of exactly payloadLen bytes. The
// decoded integer is left-padded back to the full width before splitting.
func Decode(text string, payloadLen int) (Decoded, error) {
	if text == "" || payloadLen < 0 {
		return Decoded{}, ErrMalformed
	}

	raw := base58.Decode(text)
	if len(raw) == 0 {
		return Decoded{}, fmt.Errorf("%w: invalid character", ErrMalformed)
	}

	total := 1 + payloadLen + checksum.Size4
	raw = bytes.TrimLeft(raw, "\x00")
	if len(raw) > total {
		return Decoded{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrMalformed, len(raw), total)
	}
	full := make([]byte, total)
	copy(full[total-len(raw):], raw)

	d := Decoded{
		Version: full[0],
		Payload: full[1 : 1+payloadLen],
	}
	copy(d.Checksum[:], full[1+payloadLen:])

	want := checksum.Checksum4(full[:1+payloadLen])
	d.Valid = want == d.Checksum
	return d, nil
}

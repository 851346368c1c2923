// Package address derives public addresses from secp256k1 private scalars.
package address

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"

	"github.com/AlexZinkM/cold-wallet/internal/base58check"
)

const (
	// ScalarLen is the length of a serialized private scalar.
	ScalarLen = 32

	// PublicKeyLen is the length of an uncompressed public key.
	PublicKeyLen = 65

	// maxDraws bounds NewKeypair; a valid scalar is drawn with
	// probability 1 - 2^-127 per attempt.
	maxDraws = 16
)

// ErrInvalidScalar is returned for a scalar that is zero, not below the
// curve order, or of the wrong length.
var ErrInvalidScalar = errors.New("invalid private scalar")

// ValidateScalar checks that scalar is 32 bytes and in [1, n-1].
func ValidateScalar(scalar []byte) error {
	if len(scalar) != ScalarLen {
		return fmt.Errorf("%w: length %d", ErrInvalidScalar, len(scalar))
	}
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(scalar); overflow {
		return fmt.Errorf("%w: not below curve order", ErrInvalidScalar)
	}
	defer s.Zero()
	if s.IsZero() {
		return fmt.Errorf("%w: zero", ErrInvalidScalar)
	}
	return nil
}

// DerivePublicKey returns the uncompressed point 0x04 || X || Y.
func DerivePublicKey(scalar []byte) ([]byte, error) {
	if err := ValidateScalar(scalar); err != nil {
		return nil, err
	}
	priv, pub := btcec.PrivKeyFromBytes(scalar)
	defer priv.Zero()
	return pub.SerializeUncompressed(), nil
}

// DeriveAddress returns Base58Check(PublicVersion, RIPEMD160(SHA256(pubkey))).
func DeriveAddress(scalar []byte, net Network) (string, error) {
	pubKey, err := DerivePublicKey(scalar)
	if err != nil {
		return "", err
	}
	return base58check.Encode(net.PublicVersion, hash160(pubKey)), nil
}

func hash160(data []byte) []byte {
	h1 := sha256.Sum256(data)
	h2 := ripemd160.New()
	h2.Write(h1[:])
	return h2.Sum(nil)
}

// EncodePrivateKey renders the raw scalar as Base58Check text for the network.
func EncodePrivateKey(scalar []byte, net Network) (string, error) {
	if err := ValidateScalar(scalar); err != nil {
		return "", err
	}
	return base58check.Encode(net.PrivateVersion, scalar), nil
}

// DecodePrivateKey reverses EncodePrivateKey. The returned Decoded carries
// the version byte and the checksum verdict for the caller to judge.
func DecodePrivateKey(text string) (base58check.Decoded, error) {
	return base58check.Decode(text, ScalarLen)
}

// NewKeypair draws a private scalar from src and derives its address.
func NewKeypair(src io.Reader, net Network) (scalar []byte, addr string, err error) {
	scalar = make([]byte, ScalarLen)
	for i := 0; i < maxDraws; i++ {
		if _, err := io.ReadFull(src, scalar); err != nil {
			clear(scalar)
			return nil, "", fmt.Errorf("failed to read randomness: %w", err)
		}
		if ValidateScalar(scalar) == nil {
			addr, err = DeriveAddress(scalar, net)
			if err != nil {
				clear(scalar)
				return nil, "", err
			}
			return scalar, addr, nil
		}
	}
	clear(scalar)
	return nil, "", fmt.Errorf("%w: randomness source produced no valid scalar", ErrInvalidScalar)
}

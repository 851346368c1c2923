package crypto

import (
	"fmt"

	"github.com/AlexZinkM/cold-wallet/internal/base58check"
)

const (
	nonceLen      = 12
	scalarLen     = 32
	tagLen        = 16
	ciphertextLen = scalarLen + tagLen

	keyCodePayloadLen = 1 + nonceLen + ciphertextLen

	// keyCodeVersion makes key codes start with a recognizable prefix and
	// keeps them from being mistaken for private keys.
	keyCodeVersion = 0x4b
)

// KeyCode is a private scalar encrypted for one address under one secret.
// The cost parameter travels with it since decryption needs the same value.
type KeyCode struct {
	CostParam  uint8
	Nonce      [nonceLen]byte
	Ciphertext []byte
}

// String returns the Base58Check text form.
func (k KeyCode) String() string {
	payload := make([]byte, 0, keyCodePayloadLen)
	payload = append(payload, k.CostParam)
	payload = append(payload, k.Nonce[:]...)
	payload = append(payload, k.Ciphertext...)
	return base58check.Encode(keyCodeVersion, payload)
}

// ParseKeyCode decodes text produced by KeyCode.String. A checksum failure
// is reported here so a mistyped key code never reaches the KDF.
func ParseKeyCode(text string) (KeyCode, error) {
	d, err := base58check.Decode(text, keyCodePayloadLen)
	if err != nil {
		return KeyCode{}, fmt.Errorf("failed to decode key code: %w", err)
	}
	if err := d.Err(); err != nil {
		return KeyCode{}, fmt.Errorf("failed to decode key code: %w", err)
	}
	if d.Version != keyCodeVersion {
		return KeyCode{}, fmt.Errorf("unexpected key code version 0x%02x", d.Version)
	}

	k := KeyCode{
		CostParam:  d.Payload[0],
		Ciphertext: append([]byte(nil), d.Payload[1+nonceLen:]...),
	}
	copy(k.Nonce[:], d.Payload[1:1+nonceLen])
	return k, nil
}

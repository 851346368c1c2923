package crypto

import (
	"errors"
	"fmt"
)

// ErrDecryptionFailed is returned when a key code does not open with the
// given secret, address and cost parameter, or is corrupted.
var ErrDecryptionFailed = errors.New("key code decryption failed")

// DecryptKey re-derives the key and opens code. The caller should compare
// the address derived from the result against address before trusting it.
// secret must be []byte for security (caller should zero it after use)
func DecryptKey(code KeyCode, secret []byte, address string, costParam uint8) ([]byte, error) {
	if code.CostParam != costParam {
		return nil, fmt.Errorf("%w: cost parameter %d does not match recorded %d",
			ErrDecryptionFailed, costParam, code.CostParam)
	}
	if len(code.Ciphertext) != ciphertextLen {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrDecryptionFailed, len(code.Ciphertext))
	}

	key, err := deriveKey(secret, address, costParam)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	scalar, err := aesGCM.Open(nil, code.Nonce[:], code.Ciphertext, []byte(address))
	if err != nil {
		return nil, fmt.Errorf("%w: wrong secret or address", ErrDecryptionFailed)
	}
	if len(scalar) != scalarLen {
		clear(scalar)
		return nil, fmt.Errorf("%w: plaintext length %d", ErrDecryptionFailed, len(scalar))
	}
	return scalar, nil
}

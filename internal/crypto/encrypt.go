package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// EncryptKey encrypts scalar with AES-256-GCM under a key derived from
// secret and address. The address is also bound as additional data.
// secret must be []byte for security (caller should zero it after use)
func EncryptKey(rand io.Reader, scalar, secret []byte, address string, costParam uint8) (KeyCode, error) {
	if len(scalar) != scalarLen {
		return KeyCode{}, fmt.Errorf("private scalar must be %d bytes, got %d", scalarLen, len(scalar))
	}

	// Generate nonce
	var code KeyCode
	if _, err := io.ReadFull(rand, code.Nonce[:]); err != nil {
		return KeyCode{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := deriveKey(secret, address, costParam)
	if err != nil {
		return KeyCode{}, err
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return KeyCode{}, err
	}

	code.CostParam = costParam
	code.Ciphertext = aesGCM.Seal(nil, code.Nonce[:], scalar, []byte(address))
	return code, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

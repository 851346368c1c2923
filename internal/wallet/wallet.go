// Package wallet is the entry point used by the assembler: it generates the
// master secret, creates keypairs and protects each private scalar.
package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/AlexZinkM/cold-wallet/internal/address"
	"github.com/AlexZinkM/cold-wallet/internal/block7"
	"github.com/AlexZinkM/cold-wallet/internal/crypto"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
)

// ErrAddressMismatch is returned when a decrypted scalar does not derive the
// address its key code is bound to. This means tampering or a bug and must
// never be downgraded to a warning.
var ErrAddressMismatch = errors.New("recovered key does not match address")

// Service holds no key material; every call is self-contained.
type Service struct {
	log *zap.Logger
}

// New returns a Service logging to log, or nowhere if log is nil.
func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log.Named("wallet")}
}

// GenerateSecret draws a new master secret of bits entropy from src.
func (s *Service) GenerateSecret(src io.Reader, bits int) (secret.Secret, error) {
	sec, err := secret.Generate(src, bits)
	if err != nil {
		return "", err
	}
	s.log.Debug("generated secret", zap.Int("bits", bits))
	return sec, nil
}

// SplitSecret returns the paper blocks for sec.
func (s *Service) SplitSecret(sec secret.Secret, count int) ([]block7.Block, error) {
	return block7.Split(string(sec), count)
}

// MergeBlocks reassembles a secret from transcribed blocks. The result is
// returned even when a checksum fails so the caller can show it.
func (s *Service) MergeBlocks(blocks []block7.Block) block7.Merged {
	m := block7.Merge(blocks)
	if !m.Valid {
		s.log.Warn("secret blocks failed verification", zap.Ints("bad", m.Bad))
	}
	return m
}

// NewKeypair draws a private scalar from src and derives its address.
func (s *Service) NewKeypair(src io.Reader, net address.Network) ([]byte, string, error) {
	return address.NewKeypair(src, net)
}

// ProtectKey encrypts scalar for addr and checks that the result recovers to
// the same scalar and address before returning it.
func (s *Service) ProtectKey(src io.Reader, scalar []byte, sec secret.Secret, addr string,
	net address.Network, costParam uint8) (crypto.KeyCode, error) {

	derived, err := address.DeriveAddress(scalar, net)
	if err != nil {
		return crypto.KeyCode{}, err
	}
	if derived != addr {
		return crypto.KeyCode{}, fmt.Errorf("%w: scalar derives %s, not %s", ErrAddressMismatch, derived, addr)
	}

	password := sec.Bytes()
	defer clear(password)

	code, err := crypto.EncryptKey(src, scalar, password, addr, costParam)
	if err != nil {
		return crypto.KeyCode{}, fmt.Errorf("failed to encrypt key: %w", err)
	}

	recovered, err := s.RecoverKey(code, sec, addr, net, costParam)
	if err != nil {
		return crypto.KeyCode{}, fmt.Errorf("failed to verify key code: %w", err)
	}
	defer clear(recovered)
	if !bytes.Equal(recovered, scalar) {
		return crypto.KeyCode{}, fmt.Errorf("%w: round trip changed the scalar", ErrAddressMismatch)
	}

	s.log.Debug("protected key", zap.String("address", addr), zap.Uint8("cost", costParam))
	return code, nil
}

// RecoverKey decrypts code and checks that the scalar derives addr on net.
func (s *Service) RecoverKey(code crypto.KeyCode, sec secret.Secret, addr string,
	net address.Network, costParam uint8) ([]byte, error) {

	password := sec.Bytes()
	defer clear(password)

	scalar, err := crypto.DecryptKey(code, password, addr, costParam)
	if err != nil {
		return nil, err
	}

	derived, err := address.DeriveAddress(scalar, net)
	if err != nil {
		clear(scalar)
		return nil, err
	}
	if derived != addr {
		clear(scalar)
		s.log.Error("recovered key derives a different address", zap.String("address", addr))
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrAddressMismatch, addr, derived)
	}
	return scalar, nil
}

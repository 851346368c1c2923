package wallet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/cold-wallet/internal/address"
	"github.com/AlexZinkM/cold-wallet/internal/crypto"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
)

const nonceLen = 12

// Entry is one generated address and its protected private key.
type Entry struct {
	Address string
	KeyCode crypto.KeyCode
}

type pending struct {
	scalar []byte
	addr   string
	nonce  []byte
}

// GenerateKeys creates count keypairs and protects each one with sec.
// All randomness is drawn from src up front and in order, so a seeded src
// gives the same keys regardless of workers. Scalars are wiped before return.
func (s *Service) GenerateKeys(ctx context.Context, src io.Reader, net address.Network, sec secret.Secret,
	costParam uint8, count, workers int) ([]Entry, error) {

	if count < 1 {
		return nil, fmt.Errorf("address count must be positive, got %d", count)
	}
	if workers < 1 {
		workers = 1
	}
	if err := crypto.ValidateCost(costParam); err != nil {
		return nil, err
	}

	jobs := make([]pending, count)
	defer func() {
		for _, j := range jobs {
			clear(j.scalar)
		}
	}()
	for i := range jobs {
		scalar, addr, err := address.NewKeypair(src, net)
		if err != nil {
			return nil, fmt.Errorf("failed to generate keypair %d: %w", i, err)
		}
		nonce := make([]byte, nonceLen)
		if _, err := io.ReadFull(src, nonce); err != nil {
			clear(scalar)
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}
		jobs[i] = pending{scalar: scalar, addr: addr, nonce: nonce}
	}

	start := time.Now()
	entries := make([]Entry, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			j := jobs[i]
			code, err := s.ProtectKey(bytes.NewReader(j.nonce), j.scalar, sec, j.addr, net, costParam)
			if err != nil {
				return fmt.Errorf("key %d (%s): %w", i, j.addr, err)
			}
			entries[i] = Entry{Address: j.addr, KeyCode: code}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("key generation interrupted: %w", err)
		}
		return nil, err
	}

	s.log.Info("generated keys",
		zap.String("network", net.Name),
		zap.Int("count", count),
		zap.Uint8("cost", costParam),
		zap.Int("workers", workers),
		zap.Duration("took", time.Since(start)))
	return entries, nil
}

// VerifyEntries recovers every entry with sec and checks its address.
// It stops at the first failure.
func (s *Service) VerifyEntries(ctx context.Context, entries []Entry, sec secret.Secret,
	net address.Network, costParam uint8, workers int) error {

	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scalar, err := s.RecoverKey(e.KeyCode, sec, e.Address, net, costParam)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Address, err)
			}
			clear(scalar)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("verified keys", zap.Int("count", len(entries)))
	return nil
}

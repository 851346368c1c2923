// Package block7 splits a secret into groups a human can copy onto paper,
// each carrying its own CRC-8 so a typo can be pinned to a single group.
package block7

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/cold-wallet/internal/checksum"
)

// MinBlocks is the smallest block count accepted by Split.
const MinBlocks = 2

var (
	// ErrInvalidBlockCount is returned when the block count is below
	// MinBlocks or does not divide the secret length evenly.
	ErrInvalidBlockCount = errors.New("invalid block count")

	// ErrEmptySecret is returned when there is nothing to split or merge.
	ErrEmptySecret = errors.New("secret is empty")

	// ErrChecksumMismatch is returned by callers that refuse to accept a
	// Merged value whose blocks failed verification.
	ErrChecksumMismatch = errors.New("block checksum mismatch")
)

// Block is one transcribed group of the secret.
type Block struct {
	Text     string
	Checksum byte
}

// Valid reports whether the stored checksum matches the text.
func (b Block) Valid() bool {
	return checksum.CRC8([]byte(b.Text)) == b.Checksum
}

// Merged is the best-effort reconstruction of a secret. Secret is filled in
// even when Valid is false so a near-correct transcription can be fixed by hand.
type Merged struct {
	Secret string
	Valid  bool
	// Bad holds the 0-based indices of blocks that failed their checksum.
	Bad []int
}

// Err returns ErrChecksumMismatch naming the bad blocks (1-based), or nil.
func (m Merged) Err() error {
	if m.Valid {
		return nil
	}
	if len(m.Bad) == 0 {
		return ErrEmptySecret
	}
	nums := make([]int, len(m.Bad))
	for i, idx := range m.Bad {
		nums[i] = idx + 1
	}
	return fmt.Errorf("%w: blocks %v", ErrChecksumMismatch, nums)
}

// Split partitions secret into count contiguous equal-length blocks.
func Split(secret string, count int) ([]Block, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if count < MinBlocks {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrInvalidBlockCount, MinBlocks, count)
	}
	if len(secret)%count != 0 {
		return nil, fmt.Errorf("%w: %d does not divide secret length %d", ErrInvalidBlockCount, count, len(secret))
	}

	size := len(secret) / count
	blocks := make([]Block, 0, count)
	for i := 0; i < len(secret); i += size {
		text := secret[i : i+size]
		blocks = append(blocks, Block{
			Text:     text,
			Checksum: checksum.CRC8([]byte(text)),
		})
	}
	return blocks, nil
}

// Merge concatenates the blocks in order and verifies every checksum.
func Merge(blocks []Block) Merged {
	var m Merged
	if len(blocks) == 0 {
		return m
	}

	size := 0
	for _, b := range blocks {
		size += len(b.Text)
	}
	buf := make([]byte, 0, size)
	for i, b := range blocks {
		buf = append(buf, b.Text...)
		if !b.Valid() {
			m.Bad = append(m.Bad, i)
		}
	}

	m.Secret = string(buf)
	m.Valid = len(m.Bad) == 0 && size > 0
	return m
}

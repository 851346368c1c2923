package block7

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const separator = "-"

// String renders the block the way it is written on paper: "e201ca0-58".
func (b Block) String() string {
	return b.Text + separator + hex.EncodeToString([]byte{b.Checksum})
}

// ParseBlock parses a line written by Block.String. It does not verify the
// checksum; Merge does that.
func ParseBlock(line string) (Block, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	i := strings.LastIndex(line, separator)
	if i <= 0 {
		return Block{}, fmt.Errorf("invalid block %q: expected text-checksum", line)
	}

	sum, err := hex.DecodeString(line[i+1:])
	if err != nil || len(sum) != 1 {
		return Block{}, fmt.Errorf("invalid block checksum %q", line[i+1:])
	}

	return Block{Text: line[:i], Checksum: sum[0]}, nil
}

// ParseBlocks parses one block per non-empty line.
func ParseBlocks(lines []string) ([]Block, error) {
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := ParseBlock(line)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

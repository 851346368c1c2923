package paperwallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/cold-wallet/internal/model"
)

// ReadWallet reads a .cwallet file. Nothing in it is secret.
func ReadWallet(filePath string) (*model.WalletFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, []byte{0xEF, 0xBB, 0xBF})

	var file model.WalletFile
	if err := json.Unmarshal(fileData, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", err)
	}
	if file.Version != model.WalletFileVersion {
		return nil, fmt.Errorf("unsupported wallet file version %d", file.Version)
	}
	return &file, nil
}

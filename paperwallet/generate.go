package paperwallet

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/AlexZinkM/cold-wallet/internal/address"
	"github.com/AlexZinkM/cold-wallet/internal/model"
	"github.com/AlexZinkM/cold-wallet/internal/wallet"
)

const fileExt = ".cwallet"

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	_, ok := err.(*FileExistsError)
	return ok
}

// Options controls wallet generation.
type Options struct {
	Network      address.Network
	CostParam    uint8
	SecretBits   int
	BlockCount   int
	AddressCount int
	Workers      int
	// Rand is the randomness source; use random.Secure() outside tests.
	Rand io.Reader
}

// GenerateWallet creates a new secret and AddressCount protected keys, and
// writes the keys to filePath. The returned blocks are the only copy of the
// secret and must be written down by the user.
func GenerateWallet(ctx context.Context, log *zap.Logger, filePath string, opts Options) (*model.GenerateResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := checkTarget(filePath); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		return nil, errors.New("randomness source is required")
	}

	svc := wallet.New(log)
	sec, err := svc.GenerateSecret(opts.Rand, opts.SecretBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	blocks, err := svc.SplitSecret(sec, opts.BlockCount)
	if err != nil {
		return nil, fmt.Errorf("failed to split secret: %w", err)
	}
	// What goes on paper must merge back to the secret the keys use.
	if m := svc.MergeBlocks(blocks); !m.Valid || m.Secret != string(sec) {
		return nil, errors.New("secret blocks do not merge back to the secret")
	}

	entries, err := svc.GenerateKeys(ctx, opts.Rand, opts.Network, sec, opts.CostParam, opts.AddressCount, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}

	file := model.WalletFile{
		Version:    model.WalletFileVersion,
		Network:    opts.Network.Name,
		CostParam:  opts.CostParam,
		BlockCount: len(blocks),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Keys:       make([]model.KeyEntry, 0, len(entries)),
	}
	for _, e := range entries {
		qr, err := generateQRCode(e.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		file.Keys = append(file.Keys, model.KeyEntry{
			Address: e.Address,
			KeyCode: e.KeyCode.String(),
			QR:      qr,
		})
	}

	if err := writeWallet(filePath, &file); err != nil {
		return nil, err
	}
	log.Info("wallet written", zap.String("path", filePath), zap.Int("addresses", len(file.Keys)))

	res := &model.GenerateResult{
		FilePath:  filePath,
		Network:   file.Network,
		Blocks:    make([]string, len(blocks)),
		Addresses: file.Addresses(),
	}
	for i, b := range blocks {
		res.Blocks[i] = b.String()
	}
	return res, nil
}

// checkTarget refuses anything but an absent or empty .cwallet file.
func checkTarget(filePath string) error {
	if filepath.Ext(filePath) != fileExt {
		return fmt.Errorf("file must have %s extension", fileExt)
	}
	fileInfo, err := os.Stat(filePath)
	if err == nil && fileInfo.Size() > 0 {
		return &FileExistsError{Message: "file is not empty"}
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	return nil
}

func writeWallet(filePath string, file *model.WalletFile) error {
	fileData, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	fileDataWithBOM := append(utf8BOM, fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

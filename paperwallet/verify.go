package paperwallet

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/cold-wallet/internal/address"
	"github.com/AlexZinkM/cold-wallet/internal/crypto"
	"github.com/AlexZinkM/cold-wallet/internal/model"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
	"github.com/AlexZinkM/cold-wallet/internal/wallet"
)

// VerifyWallet checks that sec opens every key in the file and that every
// key derives its address. It returns the number of keys checked.
func VerifyWallet(ctx context.Context, log *zap.Logger, filePath string, sec secret.Secret, workers int) (int, error) {
	file, net, err := open(filePath)
	if err != nil {
		return 0, err
	}

	entries := make([]wallet.Entry, 0, len(file.Keys))
	for _, k := range file.Keys {
		code, err := crypto.ParseKeyCode(k.KeyCode)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", k.Address, err)
		}
		entries = append(entries, wallet.Entry{Address: k.Address, KeyCode: code})
	}

	if err := wallet.New(log).VerifyEntries(ctx, entries, sec, net, file.CostParam, workers); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// RecoverPrivateKey decrypts the key for addr and returns it as Base58Check
// private key text for the wallet's network, ready to import elsewhere.
func RecoverPrivateKey(log *zap.Logger, filePath string, sec secret.Secret, addr string) (string, error) {
	file, net, err := open(filePath)
	if err != nil {
		return "", err
	}

	entry := file.Find(addr)
	if entry == nil {
		return "", fmt.Errorf("address %s not found in wallet", addr)
	}
	code, err := crypto.ParseKeyCode(entry.KeyCode)
	if err != nil {
		return "", err
	}

	scalar, err := wallet.New(log).RecoverKey(code, sec, addr, net, file.CostParam)
	if err != nil {
		return "", err
	}
	defer clear(scalar)

	return address.EncodePrivateKey(scalar, net)
}

func open(filePath string) (*model.WalletFile, address.Network, error) {
	file, err := ReadWallet(filePath)
	if err != nil {
		return nil, address.Network{}, err
	}
	net, err := address.ParseNetwork(file.Network)
	if err != nil {
		return nil, address.Network{}, err
	}
	return file, net, nil
}

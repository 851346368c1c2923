// Cold wallet generator: creates a paper secret and a file of encrypted keys.
// Usage:
//
//	coldwallet generate
//	coldwallet verify [blocks-file]
//	coldwallet recover <address> [blocks-file]
//
// Settings come from COLDWALLET_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AlexZinkM/cold-wallet/internal/block7"
	"github.com/AlexZinkM/cold-wallet/internal/config"
	"github.com/AlexZinkM/cold-wallet/internal/random"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
	"github.com/AlexZinkM/cold-wallet/paperwallet"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: coldwallet generate | verify [blocks-file] | recover <address> [blocks-file]")
	}

	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch args[0] {
	case "generate":
		return generate(ctx, log, cfg)
	case "verify":
		sec, err := readSecret(cfg, args[1:])
		if err != nil {
			return err
		}
		n, err := paperwallet.VerifyWallet(ctx, log, cfg.WalletFile, sec, cfg.Workers)
		if err != nil {
			return err
		}
		fmt.Printf("All %d keys in %s open with this secret.\n", n, cfg.WalletFile)
		return nil
	case "recover":
		if len(args) < 2 {
			return errors.New("usage: coldwallet recover <address> [blocks-file]")
		}
		sec, err := readSecret(cfg, args[2:])
		if err != nil {
			return err
		}
		key, err := paperwallet.RecoverPrivateKey(log, cfg.WalletFile, sec, args[1])
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func generate(ctx context.Context, log *zap.Logger, cfg *config.Config) error {
	res, err := paperwallet.GenerateWallet(ctx, log, cfg.WalletFile, paperwallet.Options{
		Network:      cfg.NetworkParams(),
		CostParam:    cfg.CostParam,
		SecretBits:   cfg.SecretBits,
		BlockCount:   cfg.BlockCount,
		AddressCount: cfg.AddressCount,
		Workers:      cfg.Workers,
		Rand:         random.Secure(),
	})
	if err != nil {
		if paperwallet.IsFileExistsError(err) {
			return fmt.Errorf("%s: %w, refusing to overwrite", cfg.WalletFile, err)
		}
		return err
	}

	fmt.Println("Write these blocks on paper. They are the only copy of your secret:")
	for i, b := range res.Blocks {
		fmt.Printf("  %d: %s\n", i+1, b)
	}
	fmt.Printf("\nAddresses (%s), saved to %s:\n", res.Network, res.FilePath)
	for _, a := range res.Addresses {
		fmt.Println("  " + a)
	}
	return nil
}

// readSecret reads blocks from the named file, or prompts for them.
func readSecret(cfg *config.Config, args []string) (secret.Secret, error) {
	var (
		blocks []block7.Block
		err    error
	)
	if len(args) > 0 {
		f, ferr := os.Open(args[0])
		if ferr != nil {
			return "", fmt.Errorf("failed to open blocks file: %w", ferr)
		}
		blocks, err = config.ReadBlocks(f)
		f.Close()
	} else {
		blocks, err = config.PromptForBlocks(cfg.BlockCount)
	}
	if err != nil {
		return "", err
	}

	m := block7.Merge(blocks)
	if err := m.Err(); err != nil {
		return "", fmt.Errorf("check your transcription: %w", err)
	}
	return secret.Parse(m.Secret)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

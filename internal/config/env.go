package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/AlexZinkM/cold-wallet/internal/address"
	"github.com/AlexZinkM/cold-wallet/internal/block7"
	"github.com/AlexZinkM/cold-wallet/internal/crypto"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
)

// envPrefix prefixes every variable: COLDWALLET_NETWORK, COLDWALLET_COST_PARAM, ...
const envPrefix = "COLDWALLET"

// Config contains all configuration parameters for the application.
// Note: the secret is never configured, it is typed in at runtime - use PromptForBlocks()
type Config struct {
	Network      string `envconfig:"NETWORK" default:"testnet3"`
	CostParam    uint8  `envconfig:"COST_PARAM" default:"18"`
	BlockCount   int    `envconfig:"BLOCK_COUNT" default:"8"`
	SecretBits   int    `envconfig:"SECRET_BITS" default:"224"`
	AddressCount int    `envconfig:"ADDRESS_COUNT" default:"10"`
	Workers      int    `envconfig:"WORKERS" default:"1"`
	WalletFile   string `envconfig:"WALLET_FILE" default:"wallet.cwallet"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Load reads and validates configuration from environment variables.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Init loads configuration into the global instance.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := address.ParseNetwork(c.Network); err != nil {
		return err
	}
	if err := crypto.ValidateCost(c.CostParam); err != nil {
		return err
	}
	if c.BlockCount < block7.MinBlocks {
		return fmt.Errorf("%w: BLOCK_COUNT must be at least %d", block7.ErrInvalidBlockCount, block7.MinBlocks)
	}
	if c.SecretBits <= 0 || c.SecretBits%secret.UnitBits != 0 {
		return fmt.Errorf("%w: SECRET_BITS=%d", secret.ErrInvalidBitLength, c.SecretBits)
	}
	if (c.SecretBits/4)%c.BlockCount != 0 {
		return fmt.Errorf("%w: %d characters do not split into %d blocks",
			block7.ErrInvalidBlockCount, c.SecretBits/4, c.BlockCount)
	}
	if c.AddressCount < 1 {
		return errors.New("ADDRESS_COUNT must be positive")
	}
	if c.Workers < 1 {
		return errors.New("WORKERS must be positive")
	}
	if !strings.HasSuffix(c.WalletFile, ".cwallet") {
		return errors.New("WALLET_FILE must have .cwallet extension")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// NetworkParams returns the configured network.
func (c *Config) NetworkParams() address.Network {
	net, err := address.ParseNetwork(c.Network)
	if err != nil {
		panic("config not validated: " + err.Error())
	}
	return net
}

// PromptForBlocks asks for count secret blocks in the terminal.
// Input is read without echoing (hidden input).
func PromptForBlocks(count int) ([]block7.Block, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter the secret")
	}

	blocks := make([]block7.Block, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(os.Stderr, "Enter block %d of %d: ", i, count)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to read block: %w", err)
		}
		b, err := block7.ParseBlock(string(raw))
		clear(raw)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// ReadBlocks reads one block per line from a non-interactive stream, for
// scripted verification. Blank lines are skipped.
func ReadBlocks(r io.Reader) ([]block7.Block, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocks: %w", err)
	}
	return block7.ParseBlocks(lines)
}

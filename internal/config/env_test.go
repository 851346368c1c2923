package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cold-wallet/internal/block7"
	"github.com/AlexZinkM/cold-wallet/internal/crypto"
	"github.com/AlexZinkM/cold-wallet/internal/secret"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "testnet3", c.Network)
	require.Equal(t, uint8(crypto.DefaultCostParam), c.CostParam)
	require.Equal(t, 8, c.BlockCount)
	require.Equal(t, secret.DefaultBits, c.SecretBits)
	require.Equal(t, 10, c.AddressCount)
	require.Equal(t, "wallet.cwallet", c.WalletFile)

	net := c.NetworkParams()
	require.Equal(t, byte(0x6f), net.PublicVersion)
	require.Equal(t, byte(0xef), net.PrivateVersion)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COLDWALLET_NETWORK", "mainnet")
	t.Setenv("COLDWALLET_COST_PARAM", "15")
	t.Setenv("COLDWALLET_BLOCK_COUNT", "4")
	t.Setenv("COLDWALLET_WORKERS", "3")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mainnet", c.Network)
	require.Equal(t, uint8(15), c.CostParam)
	require.Equal(t, 4, c.BlockCount)
	require.Equal(t, 3, c.Workers)
	require.Equal(t, byte(0x00), c.NetworkParams().PublicVersion)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		err   error
	}{
		{"unknown network", "COLDWALLET_NETWORK", "dogecoin", nil},
		{"cost too low", "COLDWALLET_COST_PARAM", "10", crypto.ErrCostTooLow},
		{"one block", "COLDWALLET_BLOCK_COUNT", "1", block7.ErrInvalidBlockCount},
		{"blocks do not divide", "COLDWALLET_BLOCK_COUNT", "5", block7.ErrInvalidBlockCount},
		{"bits", "COLDWALLET_SECRET_BITS", "256", secret.ErrInvalidBitLength},
		{"no addresses", "COLDWALLET_ADDRESS_COUNT", "0", nil},
		{"no workers", "COLDWALLET_WORKERS", "0", nil},
		{"extension", "COLDWALLET_WALLET_FILE", "wallet.json", nil},
		{"log level", "COLDWALLET_LOG_LEVEL", "loud", nil},
		{"not a number", "COLDWALLET_COST_PARAM", "high", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestInitGet(t *testing.T) {
	cfg = nil
	require.Panics(t, func() { Get() })
	require.NoError(t, Init())
	require.Equal(t, "testnet3", Get().Network)
}

func TestReadBlocks(t *testing.T) {
	blocks, err := block7.Split("e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459", 8)
	require.NoError(t, err)

	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.String() + "\n\n")
	}
	read, err := ReadBlocks(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, blocks, read)
}

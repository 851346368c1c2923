package address

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cold-wallet/internal/random"
)

const curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

var (
	mainnet = NetworkFromParams(&chaincfg.MainNetParams)
	testnet = NetworkFromParams(&chaincfg.TestNet3Params)
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func scalarOne() []byte {
	s := make([]byte, ScalarLen)
	s[31] = 1
	return s
}

func TestNetworkFromParams(t *testing.T) {
	require.Equal(t, Network{Name: "mainnet", PrivateVersion: 0x80, PublicVersion: 0x00}, mainnet)
	require.Equal(t, Network{Name: "testnet3", PrivateVersion: 0xef, PublicVersion: 0x6f}, testnet)

	net, err := ParseNetwork("testnet3")
	require.NoError(t, err)
	require.Equal(t, testnet, net)

	_, err = ParseNetwork("")
	require.Error(t, err)
	_, err = ParseNetwork("litecoin")
	require.Error(t, err)
}

func TestDerivePublicKeyGenerator(t *testing.T) {
	pub, err := DerivePublicKey(scalarOne())
	require.NoError(t, err)
	require.Len(t, pub, PublicKeyLen)
	require.Equal(t,
		"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"+
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		hex.EncodeToString(pub))
}

func TestDeriveAddressKnownVectors(t *testing.T) {
	tests := []struct {
		scalar string
		net    Network
		want   string
	}{
		{
			scalar: "0000000000000000000000000000000000000000000000000000000000000001",
			net:    mainnet,
			want:   "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm",
		},
		{
			scalar: "e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459c035ed88",
			net:    mainnet,
			want:   "1DujahC1CFnuWEechrPuSEK7kW6tyqLPxx",
		},
		{
			scalar: "e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459c035ed88",
			net:    testnet,
			want:   "mtRgskGz1HEAHM8ERRNHG9XScVhbwNkQ6V",
		},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			addr, err := DeriveAddress(mustHex(t, tt.scalar), tt.net)
			require.NoError(t, err)
			require.Equal(t, tt.want, addr)

			again, err := DeriveAddress(mustHex(t, tt.scalar), tt.net)
			require.NoError(t, err)
			require.Equal(t, addr, again)
		})
	}
}

func TestValidateScalar(t *testing.T) {
	order := mustHex(t, curveOrderHex)
	belowOrder := mustHex(t, curveOrderHex)
	belowOrder[31]--

	tests := []struct {
		name   string
		scalar []byte
		valid  bool
	}{
		{"one", scalarOne(), true},
		{"order minus one", belowOrder, true},
		{"zero", make([]byte, ScalarLen), false},
		{"order", order, false},
		{"all ones", bytes.Repeat([]byte{0xff}, ScalarLen), false},
		{"short", []byte{1}, false},
		{"long", append(scalarOne(), 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScalar(tt.scalar)
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidScalar)

			_, err = DeriveAddress(tt.scalar, mainnet)
			require.ErrorIs(t, err, ErrInvalidScalar)
			_, err = EncodePrivateKey(tt.scalar, mainnet)
			require.ErrorIs(t, err, ErrInvalidScalar)
		})
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	text, err := EncodePrivateKey(scalarOne(), mainnet)
	require.NoError(t, err)
	require.Equal(t, "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", text)

	d, err := DecodePrivateKey(text)
	require.NoError(t, err)
	require.True(t, d.Valid)
	require.Equal(t, mainnet.PrivateVersion, d.Version)
	require.Equal(t, scalarOne(), d.Payload)

	text, err = EncodePrivateKey(mustHex(t, "e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459c035ed88"), testnet)
	require.NoError(t, err)
	require.Equal(t, "93JTD3KXHsEHQqXNSUKmT5fg1KWTjnLt3EnDam3sPD3qRKNizzU", text)
}

func TestNewKeypairKnownVector(t *testing.T) {
	src := random.NewInsecureSeeded([]byte("cold wallet known vector"))
	scalar, addr, err := NewKeypair(src, testnet)
	require.NoError(t, err)
	require.Equal(t, "e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459c035ed88", hex.EncodeToString(scalar))
	require.Equal(t, "mtRgskGz1HEAHM8ERRNHG9XScVhbwNkQ6V", addr)
}

func TestNewKeypairDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	src := random.NewInsecureSeeded([]byte("distinct"))
	for i := 0; i < 20; i++ {
		_, addr, err := NewKeypair(src, mainnet)
		require.NoError(t, err)
		_, dup := seen[addr]
		require.False(t, dup, fmt.Sprintf("duplicate address %s", addr))
		seen[addr] = struct{}{}
	}
}

func TestNewKeypairRedrawsInvalid(t *testing.T) {
	stream := append(make([]byte, ScalarLen), scalarOne()...)
	scalar, addr, err := NewKeypair(bytes.NewReader(stream), mainnet)
	require.NoError(t, err)
	require.Equal(t, scalarOne(), scalar)
	require.Equal(t, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm", addr)

	_, _, err = NewKeypair(bytes.NewReader(make([]byte, ScalarLen)), mainnet)
	require.Error(t, err)
}

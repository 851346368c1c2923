package secret

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cold-wallet/internal/random"
)

func TestGenerateKnownVector(t *testing.T) {
	s, err := Generate(random.NewInsecureSeeded([]byte("cold wallet known vector")), DefaultBits)
	require.NoError(t, err)
	require.Equal(t, Secret("e201ca0706759d5e1deec56763a30247012635856065e8c5ba944459"), s)
	require.Equal(t, DefaultBits, s.Bits())
}

func TestGenerateLengths(t *testing.T) {
	for _, bits := range []int{UnitBits, 2 * UnitBits, 3 * UnitBits, DefaultBits, 10 * UnitBits} {
		s, err := Generate(random.Secure(), bits)
		require.NoError(t, err)
		require.Len(t, s, bits/4)
		require.Equal(t, bits, s.Bits())

		parsed, err := Parse(string(s))
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}
}

func TestGenerateRejects(t *testing.T) {
	for _, bits := range []int{0, -28, 27, 32, 256} {
		_, err := Generate(random.Secure(), bits)
		require.ErrorIs(t, err, ErrInvalidBitLength)
	}

	_, err := Generate(bytes.NewReader([]byte{1, 2}), DefaultBits)
	require.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrInvalidBitLength)
	_, err = Parse("abcdef")
	require.ErrorIs(t, err, ErrInvalidBitLength)
	_, err = Parse("abcdefG")
	require.Error(t, err)
}

// Package checksum holds the byte-level checksums used by the paper blocks
// and the Base58Check codec.
package checksum

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sigurn/crc8"
)

// Size4 is the length of a double-SHA256 checksum.
const Size4 = 4

// CRC-8 with polynomial 0x07, zero init, no reflection (check value 0xF4).
var crc8Table = crc8.MakeTable(crc8.CRC8)

// CRC8 is for catching transcription typos only, not for integrity.
func CRC8(data []byte) byte {
	return crc8.Checksum(data, crc8Table)
}

// Checksum4 returns the first 4 bytes of SHA256(SHA256(data)).
func Checksum4(data []byte) [Size4]byte {
	var out [Size4]byte
	copy(out[:], chainhash.DoubleHashB(data))
	return out
}

package random

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// Source supplies the randomness for every generation call.
// It is passed explicitly so the choice is visible at the call site.
type Source = io.Reader

// Secure returns the operating system CSPRNG.
func Secure() Source {
	return rand.Reader
}

// seeded is a deterministic stream: block i is SHA256(seed || uint64be(i)).
type seeded struct {
	seed    []byte
	counter uint64
	buf     []byte
}

// NewInsecureSeeded returns a reproducible Source for tests and known-answer
// vectors. Keys produced from it are NOT secret. Never use it for real wallets.
func NewInsecureSeeded(seed []byte) Source {
	return &seeded{seed: append([]byte(nil), seed...)}
}

func (s *seeded) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.buf) == 0 {
			s.buf = s.next()
		}
		c := copy(p[n:], s.buf)
		s.buf = s.buf[c:]
		n += c
	}
	return n, nil
}

func (s *seeded) next() []byte {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], s.counter)
	s.counter++

	h := sha256.New()
	h.Write(s.seed)
	h.Write(ctr[:])
	return h.Sum(nil)
}

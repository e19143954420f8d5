package workload

import (
	"crypto/sha256"
	"math/rand"
)

// checksum hashes a freshly randomised buffer each iteration, giving a
// CPU-bound body with no sleeps or I/O.
type checksum struct {
	buf []byte
	rng *rand.Rand
	sum [sha256.Size]byte
}

func NewChecksum(bytes int) *checksum {
	return &checksum{
		buf: make([]byte, bytes),
		rng: rand.New(rand.NewSource(1)),
	}
}

func (w *checksum) Name() string { return "checksum" }

func (w *checksum) Setup() error {
	w.rng.Read(w.buf)
	return nil
}

func (w *checksum) Core() error {
	w.sum = sha256.Sum256(w.buf)
	return nil
}

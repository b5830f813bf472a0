package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a piece's staged bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates fingerprints over a sequence of pieces in order.
type Digest struct {
	d *xxhash.Digest
}

func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Add feeds one piece into the digest.
func (d *Digest) Add(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the digest of every piece added so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Package hash provides the identity hashes used to tag corpora and code
// tables. xxHash64 is fast and stable across runs but not cryptographic;
// the IDs are for caching and change detection only.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates a streaming xxHash64 over fixed-width fields, so
// composite structures can be fingerprinted without assembling an
// intermediate buffer. Fields are folded in big-endian byte order.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// AddByte folds a single byte into the digest.
func (d *Digest) AddByte(v byte) {
	_, _ = d.d.Write([]byte{v})
}

// AddUint32 folds a 32-bit value into the digest.
func (d *Digest) AddUint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, _ = d.d.Write(buf[:])
}

// AddUint64 folds a 64-bit value into the digest.
func (d *Digest) AddUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = d.d.Write(buf[:])
}

// Sum64 returns the hash of everything folded in so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

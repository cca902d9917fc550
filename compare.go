package vecmath

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether every component of v equals the matching component
// of o under float64 ==. A NaN component is never equal; +0 equals -0.
func (v Vector3) Equal(o Vector3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// ApproxEqual reports whether each component of v is within tolerance of
// the matching component of o. The three checks are independent.
func (v Vector3) ApproxEqual(o Vector3, tolerance float64) bool {
	return math.Abs(v.X-o.X) <= tolerance &&
		math.Abs(v.Y-o.Y) <= tolerance &&
		math.Abs(v.Z-o.Z) <= tolerance
}

// Hash returns a 64-bit hash of v. Vectors that are Equal hash the same.
func (v Vector3) Hash() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], hashBits(v.X))
	binary.LittleEndian.PutUint64(buf[8:], hashBits(v.Y))
	binary.LittleEndian.PutUint64(buf[16:], hashBits(v.Z))
	return xxhash.Sum64(buf[:])
}

// hashBits folds -0 into +0 so the two zeros, which compare equal, share a hash.
func hashBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

package vecmath

import (
	"fmt"
	"strconv"
	"strings"
)

// String formats v as "x,y,z". Each component uses the shortest decimal form
// that parses back to the same float64, so Parse(v.String()) == v for finite v.
func (v Vector3) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(v.Z, 'g', -1, 64))
	return sb.String()
}

// Parse reads a vector written as "x,y,z". Whitespace around each field is
// ignored. Errors wrap ErrInvalidVector.
func Parse(s string) (Vector3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Zero, fmt.Errorf("%w %q: want 3 fields, got %d", ErrInvalidVector, s, len(fields))
	}

	var c [3]float64
	for i, f := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Zero, fmt.Errorf("%w %q: field %d: %w", ErrInvalidVector, s, i, err)
		}
		c[i] = val
	}

	return Vector3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// FromString is Parse for callers that accept Zero in place of malformed input.
func FromString(s string) Vector3 {
	v, err := Parse(s)
	if err != nil {
		return Zero
	}
	return v
}

func (v Vector3) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vector3) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

package element

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// UUID is a 128-bit identifier held as two 64-bit halves, most-significant half first.
type UUID struct {
	High uint64
	Low  uint64
}

// UUIDFromBytes builds a UUID from its 16 big-endian bytes.
func UUIDFromBytes(b [16]byte) UUID {
	return UUID{
		High: binary.BigEndian.Uint64(b[0:8]),
		Low:  binary.BigEndian.Uint64(b[8:16]),
	}
}

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(u uuid.UUID) UUID {
	return UUIDFromBytes(u)
}

// ParseUUID parses the canonical textual form (and the other forms accepted by uuid.Parse).
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("parse uuid %q: %w", s, err)
	}

	return FromGoogle(u), nil
}

// Bytes returns the 16 big-endian bytes of the UUID.
func (u UUID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.High)
	binary.BigEndian.PutUint64(b[8:16], u.Low)

	return b
}

// Google converts the value to a github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u.Bytes())
}

// Compare orders UUIDs by their big-endian byte representation.
func (u UUID) Compare(o UUID) int {
	if c := cmp.Compare(u.High, o.High); c != 0 {
		return c
	}

	return cmp.Compare(u.Low, o.Low)
}

func (u UUID) String() string {
	return u.Google().String()
}

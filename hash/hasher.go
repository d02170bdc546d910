package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/dgryski/go-metro"
)

// Hasher maps a key to a 64 bit hash.
type Hasher[K comparable] func(key K) uint64

// DefaultHasher hashes strings, byte-like and integer keys with metro hash.
// Any other key is hashed through its fmt.Sprint form, so such keys must print
// equal when they compare equal.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return metro.Hash64Str(k, 0)
		case int:
			return hashUint(uint64(k))
		case int8:
			return hashUint(uint64(k))
		case int16:
			return hashUint(uint64(k))
		case int32:
			return hashUint(uint64(k))
		case int64:
			return hashUint(uint64(k))
		case uint:
			return hashUint(uint64(k))
		case uint8:
			return hashUint(uint64(k))
		case uint16:
			return hashUint(uint64(k))
		case uint32:
			return hashUint(uint64(k))
		case uint64:
			return hashUint(k)
		case uintptr:
			return hashUint(uint64(k))
		default:
			return metro.Hash64Str(fmt.Sprint(k), 0)
		}
	}
}

func hashUint(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return metro.Hash64(buf[:], 0)
}

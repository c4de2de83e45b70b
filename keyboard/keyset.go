package keyboard

import (
	"math/bits"
	"strings"
)

// KeySet is a set of keys backed by a 256-bit bitmap, one bit per HID usage code.
// The zero value is an empty set.
type KeySet [32]uint8

// Add inserts k. KeyNone is never stored.
func (s *KeySet) Add(k Key) {
	if k == KeyNone {
		return
	}
	s[k/8] |= 1 << (k % 8)
}

// Remove deletes k; removing an absent key is a no-op.
func (s *KeySet) Remove(k Key) {
	s[k/8] &^= 1 << (k % 8)
}

// Has reports whether k is in the set.
func (s *KeySet) Has(k Key) bool {
	return s[k/8]&(1<<(k%8)) != 0
}

// Clear empties the set.
func (s *KeySet) Clear() {
	*s = KeySet{}
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	n := 0
	for _, b := range s {
		n += bits.OnesCount8(b)
	}
	return n
}

// Empty reports whether the set holds no keys.
func (s *KeySet) Empty() bool {
	return *s == KeySet{}
}

// Keys returns the members in ascending usage-code order.
func (s *KeySet) Keys() []Key {
	keys := make([]Key, 0, s.Len())
	for i := 0; i < 256; i++ {
		if s[i/8]&(1<<uint(i%8)) != 0 {
			keys = append(keys, Key(i))
		}
	}
	return keys
}

// String lists the members by name, e.g. "{A LeftShift}".
func (s KeySet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

package Go_Structs

import "github.com/cespare/xxhash"

// String hash functions for the open-addressing map in Maps. DJB2 is the
// primary hash by default; XXH supplies the default probe stride since it
// is independent from DJB2.

// DJB2 hashes s with hash = hash*33 + c, seeded at 5381.
func DJB2(s string) uint {
	h := uint(5381)
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint(s[i])
	}
	return h
}

// SDBM hashes s with hash = c + hash*65599.
func SDBM(s string) uint {
	var h uint
	for i := 0; i < len(s); i++ {
		h = uint(s[i]) + h<<6 + h<<16 - h
	}
	return h
}

// XXH hashes s with xxhash.
func XXH(s string) uint {
	return uint(xxhash.Sum64String(s))
}

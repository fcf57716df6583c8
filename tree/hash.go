package tree

// HashCode is the 64-bit hash used throughout the diff engine, kept as a
// fixed-size array so it can be used as a map key and sorted byte-wise.
type HashCode [8]byte

const (
	fnvOffsetBasis uint64 = 0xcbf29ce484222325
	fnvPrime       uint64 = 0x100000001b3
)

// hashBytes computes the FNV-1a hash of input.
func hashBytes(input []byte) HashCode {
	hash := fnvOffsetBasis
	for _, b := range input {
		hash ^= uint64(b)
		hash *= fnvPrime
	}
	var out HashCode
	for i := 0; i < 8; i++ {
		out[i] = byte(hash >> (8 * uint(i)))
	}
	return out
}

// combine aggregates a collection of hash codes into one order-insensitive
// hash by sorting the codes, concatenating their bytes, and re-hashing.
func combine(codes []HashCode) HashCode {
	sorted := make([]HashCode, len(codes))
	copy(sorted, codes)
	sortHashCodes(sorted)

	buf := make([]byte, 0, len(sorted)*8)
	for _, c := range sorted {
		buf = append(buf, c[:]...)
	}
	return hashBytes(buf)
}

// sortHashCodes sorts hash codes in ascending byte order in place.
func sortHashCodes(codes []HashCode) {
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && lessHashCode(codes[j], codes[j-1]); j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
}

func lessHashCode(a, b HashCode) bool {
	for i := 0; i < 8; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

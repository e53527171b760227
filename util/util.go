package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Clamp saturates v to [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

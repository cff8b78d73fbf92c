package pot

import "golang.org/x/exp/constraints"

// Next returns the smallest power of two which is not less than x.
// Values up to 1, including zero and negative ones, map to 1.
// It returns 0 if that power of two does not fit in I.
func Next[I constraints.Integer](x I) I {
	n := I(1)
	for n < x {
		n <<= 1
		if n <= 0 {
			return 0
		}
	}
	return n
}

// Is returns true if x is a power of two.
func Is[I constraints.Integer](x I) bool {
	return x > 0 && (x&(x-1)) == 0
}

// Align returns n rounded up to the alignment boundary.
func Align[I constraints.Integer](n, alignment I) I {
	return (n + alignment - 1) / alignment * alignment
}

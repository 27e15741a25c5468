// SPDX-License-Identifier: MIT

package segclean

// Caps returns the per-label component size cap:
//
//	cap[label] = min(threshold, size of the largest component with that label)
//
// Because the cap never exceeds the largest component of a label, that
// component is never small, whatever the threshold. When the threshold is
// below the largest size, every component of the label smaller than the
// threshold is small, including ones close to the largest.
func Caps(comps []Component, threshold int) map[int]int {
	caps := make(map[int]int)
	for _, c := range comps {
		if c.Size() > caps[c.Label] {
			caps[c.Label] = c.Size()
		}
	}
	for label, size := range caps {
		caps[label] = min(size, threshold)
	}
	return caps
}

// IsSmall reports whether c is strictly smaller than its label's cap.
// Labels missing from caps have a zero cap and are never small.
func IsSmall(c Component, caps map[int]int) bool {
	return c.Size() < caps[c.Label]
}

// Small returns the indices of the components below their label's cap,
// in component order.
func Small(comps []Component, threshold int) []int {
	caps := Caps(comps, threshold)
	var idx []int
	for i, c := range comps {
		if IsSmall(c, caps) {
			idx = append(idx, i)
		}
	}
	return idx
}

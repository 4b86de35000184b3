package domain

// Tour is a cyclic visiting order over a fixed set of cities.
// The last city connects back to the first.
//
// A Tour is treated as an immutable snapshot once handed out: callers
// that need to permute it work on a Clone.
type Tour []City

// Return the total length of the closed cycle, including the edge from the
// last city back to the first. Empty and single-city tours have length 0.
func (t Tour) Distance() float64 {
	n := len(t)
	total := 0.0
	for i := 0; i < n; i++ {
		total += Distance(t[i], t[(i+1)%n])
	}
	return total
}

// Return an independently owned copy of the tour.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Report whether t holds exactly the same multiset of cities as other.
func (t Tour) IsPermutationOf(other Tour) bool {
	if len(t) != len(other) {
		return false
	}

	counts := make(map[City]int, len(t))
	for _, c := range other {
		counts[c]++
	}
	for _, c := range t {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}

	return true
}

package livery

import "unicode"

// NaturalCompare orders strings the way people read them: comparison is
// case-insensitive and runs of digits compare by numeric magnitude, so
// "Group 9" sorts before "Group 10". It returns -1, 0 or +1. Ties between
// distinct records are broken by the caller, not here.
func NaturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			ia, na := digitRun(ra, i)
			jb, nb := digitRun(rb, j)
			if c := compareDigitRuns(ra[ia:na], rb[jb:nb]); c != 0 {
				return c
			}
			i, j = na, nb
			continue
		}
		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	}
	return 0
}

// digitRun returns the run of digits starting at i with leading zeros
// skipped: start is the first significant digit, end is one past the run.
func digitRun(r []rune, i int) (start, end int) {
	end = i
	for end < len(r) && unicode.IsDigit(r[end]) {
		end++
	}
	start = i
	for start < end-1 && r[start] == '0' {
		start++
	}
	return start, end
}

// compareDigitRuns compares two zero-stripped digit runs by magnitude.
func compareDigitRuns(a, b []rune) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for k := range a {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

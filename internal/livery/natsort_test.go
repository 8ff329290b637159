package livery

import (
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func TestNaturalCompareDigitRuns(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"G9", "G10", -1},
		{"G10", "G9", 1},
		{"Group 9", "Group 10", -1},
		{"Group 2", "Group 2", 0},
		{"group 2", "GROUP 2", 0},
		{"Group 007", "Group 7", 0},
		{"Group 10a", "Group 10b", -1},
		{"alpha", "beta", -1},
		{"Express", "express 2", -1},
		{"", "a", -1},
		{"a", "", 1},
		{"", "", 0},
		{"12", "9", 1},
		{"Line 100", "Line 99", 1},
	}
	for _, tc := range cases {
		if got := NaturalCompare(tc.a, tc.b); got != tc.want {
			t.Errorf("NaturalCompare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNaturalCompareSortsNumericSuffixes(t *testing.T) {
	names := []string{"Group 10", "Group 9", "Group 1", "Group 2"}
	sort.Slice(names, func(i, j int) bool {
		return NaturalCompare(names[i], names[j]) < 0
	})
	want := []string{"Group 1", "Group 2", "Group 9", "Group 10"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted order %v, want %v", names, want)
		}
	}
}

func TestNaturalCompareAntisymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[A-Za-z0-9 ]{0,12}`).Draw(t, "a")
		b := rapid.StringMatching(`[A-Za-z0-9 ]{0,12}`).Draw(t, "b")
		ab := NaturalCompare(a, b)
		ba := NaturalCompare(b, a)
		if ab != -ba {
			t.Fatalf("NaturalCompare(%q,%q)=%d but reversed=%d", a, b, ab, ba)
		}
		if NaturalCompare(a, a) != 0 {
			t.Fatalf("NaturalCompare(%q,%q) != 0", a, a)
		}
	})
}

func TestNaturalCompareTransitivityOnSortedSample(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,3}[0-9]{0,4}`), 2, 8).Draw(t, "names")
		sort.Slice(names, func(i, j int) bool {
			return NaturalCompare(names[i], names[j]) < 0
		})
		for i := 0; i+1 < len(names); i++ {
			if NaturalCompare(names[i], names[i+1]) > 0 {
				t.Fatalf("sorted sample not monotone at %d: %v", i, names)
			}
		}
	})
}

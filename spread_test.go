package furor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestSpread(t *testing.T) {
	tests := []struct {
		name   string
		freqs  []Frequency[rune]
		length int
		want   string
	}{
		{
			name:   "dyadic",
			freqs:  []Frequency[rune]{{'a', 0.5}, {'b', 0.25}, {'c', 0.25}},
			length: 8,
			want:   "aabcaabc",
		},
		{
			name:   "ties go to the first listed",
			freqs:  []Frequency[rune]{{'a', 1}, {'b', 1}},
			length: 5,
			want:   "ababa",
		},
		{
			name:   "ties go to the first listed reversed",
			freqs:  []Frequency[rune]{{'b', 1}, {'a', 1}},
			length: 5,
			want:   "babab",
		},
		{
			name:   "rare symbol is appended",
			freqs:  []Frequency[rune]{{'a', 100}, {'b', 1}},
			length: 4,
			want:   "aaab",
		},
		{
			name:   "length equals alphabet",
			freqs:  []Frequency[rune]{{'x', 3}, {'y', 2}, {'z', 1}},
			length: 3,
			want:   "xyz",
		},
		{
			name:   "empty",
			freqs:  nil,
			length: 0,
			want:   "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			labeling, err := Spread(tc.freqs, tc.length)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if got := string(labeling); got != tc.want {
				t.Errorf("%q != %q", got, tc.want)
			}
		})
	}
}

func TestSpreadErrors(t *testing.T) {
	tests := []struct {
		name   string
		freqs  []Frequency[rune]
		length int
		err    error
	}{
		{name: "too short", freqs: []Frequency[rune]{{'a', 1}, {'b', 1}}, length: 1, err: ErrConfiguration},
		{name: "negative length", freqs: nil, length: -1, err: ErrConfiguration},
		{name: "no symbols", freqs: nil, length: 3, err: ErrConfiguration},
		{name: "duplicate", freqs: []Frequency[rune]{{'a', 1}, {'a', 2}}, length: 4, err: ErrConfiguration},
		{name: "zero", freqs: []Frequency[rune]{{'a', 1}, {'b', 0}}, length: 4, err: ErrInvalidFrequency},
		{name: "negative", freqs: []Frequency[rune]{{'a', -1}}, length: 4, err: ErrInvalidFrequency},
		{name: "nan", freqs: []Frequency[rune]{{'a', math.NaN()}}, length: 4, err: ErrInvalidFrequency},
		{name: "inf", freqs: []Frequency[rune]{{'a', math.Inf(1)}}, length: 4, err: ErrInvalidFrequency},
		{name: "overflowing total", freqs: []Frequency[rune]{{'a', math.MaxFloat64}, {'b', math.MaxFloat64}}, length: 4, err: ErrInvalidFrequency},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			labeling, err := Spread(tc.freqs, tc.length)
			if errors.Cause(err) != tc.err {
				t.Errorf("%+v", err)
			}
			if labeling != nil {
				t.Errorf("%q", string(labeling))
			}
		})
	}
}

// TestSpreadCoverage checks that every symbol, however rare, occurs in a labeling of the requested length.
func TestSpreadCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		numSymbols := 1 + rng.Intn(20)
		freqs := make([]Frequency[int], numSymbols)
		for i := range freqs {
			w := rng.Float64() + 1e-9
			if rng.Intn(4) == 0 {
				w *= 1e-6
			}
			freqs[i] = Frequency[int]{Symbol: i, Weight: w}
		}
		length := numSymbols + rng.Intn(100)

		labeling, err := Spread(freqs, length)
		if err != nil {
			t.Fatalf("trial %d: %+v", trial, err)
		}
		if len(labeling) != length {
			t.Errorf("trial %d: length %d, expected %d", trial, len(labeling), length)
		}
		idx := NewIndex(labeling)
		for _, f := range freqs {
			if idx.Count(f.Symbol) == 0 {
				t.Errorf("trial %d: symbol %d missing from %v", trial, f.Symbol, labeling)
			}
		}
	}
}

// TestSpreadProportions checks that counts track the weights for a long labeling.
func TestSpreadProportions(t *testing.T) {
	freqs := []Frequency[rune]{{'a', 0.6}, {'b', 0.3}, {'c', 0.1}}
	labeling, err := Spread(freqs, 1000)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	idx := NewIndex(labeling)
	for _, f := range freqs {
		share := float64(idx.Count(f.Symbol)) / float64(len(labeling))
		if math.Abs(share-f.Weight) > 0.005 {
			t.Errorf("%c: %f, expected %f", f.Symbol, share, f.Weight)
		}
	}
}

func TestSpreadMapDeterministic(t *testing.T) {
	weights := map[rune]float64{'q': 0.1, 'w': 0.2, 'e': 0.3, 'r': 0.15, 't': 0.25}
	first, err := SpreadMap(weights, 40)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 20; i++ {
		labeling, err := SpreadMap(weights, 40)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if diff := cmp.Diff(first, labeling); diff != "" {
			t.Fatalf("(-first +got):\n%s", diff)
		}

		a, b := NewIndex(first), NewIndex(labeling)
		if !cmp.Equal(a.rank, b.rank) || !cmp.Equal(a.positions, b.positions) || !cmp.Equal(a.count, b.count) {
			t.Fatalf("index differs between runs")
		}
	}
}

func TestNewIndex(t *testing.T) {
	labeling := []rune("cabbbaaacbd")
	idx := NewIndex(labeling)

	if idx.Len() != len(labeling) {
		t.Errorf("%d", idx.Len())
	}
	if diff := cmp.Diff([]rune("cabd"), idx.Symbols()); diff != "" {
		t.Errorf("symbols (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 1, 2, 1, 2, 3, 1, 3, 0}, idx.rank); diff != "" {
		t.Errorf("rank (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 5, 6, 7}, idx.Positions('a')); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}

	for i, s := range labeling {
		if idx.Rank(i) >= idx.Count(s) {
			t.Errorf("rank %d of %c at %d is not below its count %d", idx.Rank(i), s, i, idx.Count(s))
		}
	}
	for _, s := range idx.Symbols() {
		positions := idx.Positions(s)
		if len(positions) != idx.Count(s) {
			t.Errorf("%c: %d positions, count %d", s, len(positions), idx.Count(s))
		}
		for k, p := range positions {
			if labeling[p] != s || idx.Rank(p) != k {
				t.Errorf("%c: position %d has label %c rank %d", s, p, labeling[p], idx.Rank(p))
			}
		}
	}

	if idx.Count('z') != 0 {
		t.Errorf("%d", idx.Count('z'))
	}
	// Positions returns a copy.
	idx.Positions('a')[0] = 100
	if idx.Positions('a')[0] != 1 {
		t.Errorf("%v", idx.Positions('a'))
	}
}

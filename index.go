package furor

// An Index holds the per-symbol tables derived from a labeling.
// It is immutable once built.
type Index[S comparable] struct {
	count     map[S]int   // occurrences of each symbol within one block
	rank      []int       // rank[i] is the number of earlier occurrences of the symbol at position i
	positions map[S][]int // positions[s][k] is the position of the (k+1)-th occurrence of s
	symbols   []S         // distinct symbols in order of first occurrence
}

// NewIndex builds the Index of labeling in a single left to right pass.
func NewIndex[S comparable](labeling []S) *Index[S] {
	idx := &Index[S]{
		count:     make(map[S]int),
		rank:      make([]int, len(labeling)),
		positions: make(map[S][]int),
	}
	for i, s := range labeling {
		n, ok := idx.count[s]
		if !ok {
			idx.symbols = append(idx.symbols, s)
		}
		idx.rank[i] = n
		idx.count[s] = n + 1
		idx.positions[s] = append(idx.positions[s], i)
	}
	return idx
}

// Len returns the length of the indexed labeling.
func (idx *Index[S]) Len() int {
	return len(idx.rank)
}

// Count returns the number of times s occurs in the labeling, or zero if it does not occur.
func (idx *Index[S]) Count(s S) int {
	return idx.count[s]
}

// Rank returns the number of occurrences of the symbol at position i that precede i.
func (idx *Index[S]) Rank(i int) int {
	return idx.rank[i]
}

// Positions returns the strictly increasing positions at which s occurs.
func (idx *Index[S]) Positions(s S) []int {
	return append([]int(nil), idx.positions[s]...)
}

// Symbols returns the distinct symbols of the labeling in order of first occurrence.
func (idx *Index[S]) Symbols() []S {
	return append([]S(nil), idx.symbols...)
}

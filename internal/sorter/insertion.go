package sorter

// InsertionSort sorts seq ascending in place, reporting each shift and
// insertion to rec, then runs Check over the result and returns its verdict.
func InsertionSort(seq []int, rec Recorder) bool {
	for i := 1; i < len(seq); i++ {
		key := seq[i]

		j := i - 1
		for ; j >= 0 && seq[j] > key; j-- {
			seq[j+1] = seq[j]
			rec(NewShiftRight(j))
		}
		seq[j+1] = key
		rec(NewInsert(j+1, key))
	}
	return Check(seq, rec)
}

// Check scans adjacent pairs. Every ascending pair emits SORT for its left
// index followed by SORT for the last index; the first descending pair stops
// the scan with false. The final position has no right neighbour and never
// matches either comparison.
func Check(seq []int, rec Recorder) bool {
	last := len(seq) - 1
	for i := 0; i < len(seq); i++ {
		if i == last {
			continue
		}
		if seq[i] < seq[i+1] {
			rec(NewSort(i))
			rec(NewSort(last))
		} else if seq[i] > seq[i+1] {
			return false
		}
	}
	return true
}

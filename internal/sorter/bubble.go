package sorter

// BubbleSort sorts seq ascending in place. Each adjacent pair is compared;
// out-of-order pairs are swapped, in-order pairs are reported as CONTINUE.
// The tail position settled by a pass is marked SORT. Passes stop early once
// nothing moved, and the result is verified with Check.
func BubbleSort(seq []int, rec Recorder) bool {
	for end := len(seq) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			rec(NewCompare(i, i+1))
			if seq[i] > seq[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				rec(NewSwap(i, i+1))
				swapped = true
			} else {
				rec(NewContinue(i))
			}
		}
		rec(NewSort(end))
		if !swapped {
			break
		}
	}
	return Check(seq, rec)
}

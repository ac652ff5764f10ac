package sorter

// Source is the randomness needed by Permutation; *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Permutation returns 1..n shuffled by walking from the end and swapping each
// position with a random earlier-or-equal one.
func Permutation(n int, src Source) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	for cur := n; cur != 0; {
		r := src.Intn(cur)
		cur--
		seq[cur], seq[r] = seq[r], seq[cur]
	}
	return seq
}

// Apply replays a single action onto a plain array model. Only the kinds
// that move data have an effect.
func Apply(seq []int, a Action) {
	a.MustValidate(len(seq))
	switch a.Kind {
	case KindShiftRight:
		seq[a.I+1] = seq[a.I]
	case KindInsert:
		seq[a.I] = a.Value
	case KindSwap:
		seq[a.I], seq[a.J] = seq[a.J], seq[a.I]
	case KindSort, KindCompare, KindContinue:
	}
}

// Replay applies actions in order to a copy of seq and returns it.
func Replay(seq []int, actions []Action) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	for _, a := range actions {
		Apply(out, a)
	}
	return out
}

// IsPermutation reports whether seq holds exactly 1..len(seq).
func IsPermutation(seq []int) bool {
	seen := make([]bool, len(seq)+1)
	for _, v := range seq {
		if v < 1 || v > len(seq) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

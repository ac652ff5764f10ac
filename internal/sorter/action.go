package sorter

import (
	"fmt"
	"strings"
)

// Kind tags an Action. All engines share the same vocabulary and each one
// emits the subset it needs.
type Kind int

const (
	KindSort Kind = iota
	KindCompare
	KindContinue
	KindInsert
	KindSwap
	KindShiftRight
)

var kindNames = [...]string{
	KindSort:       "SORT",
	KindCompare:    "COMPARE",
	KindContinue:   "CONTINUE",
	KindInsert:     "INSERT",
	KindSwap:       "SWAP",
	KindShiftRight: "SHIFT_RIGHT",
}

// Kinds lists every action kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindSort, KindCompare, KindContinue, KindInsert, KindSwap, KindShiftRight}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= KindSort && k <= KindShiftRight
}

// ParseKind accepts the upper-case names used in traces, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrMalformedAction, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrMalformedAction, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Action is one reportable step of a sort. Which payload fields are
// meaningful depends on Kind:
//
//	SORT, CONTINUE, SHIFT_RIGHT  I
//	COMPARE, SWAP                I, J
//	INSERT                       I, Value
type Action struct {
	Kind  Kind `json:"kind"`
	I     int  `json:"i"`
	J     int  `json:"j,omitempty"`
	Value int  `json:"value,omitempty"`
}

func NewSort(i int) Action       { return Action{Kind: KindSort, I: i} }
func NewCompare(i, j int) Action { return Action{Kind: KindCompare, I: i, J: j} }
func NewContinue(i int) Action   { return Action{Kind: KindContinue, I: i} }
func NewInsert(i, v int) Action  { return Action{Kind: KindInsert, I: i, Value: v} }
func NewSwap(i, j int) Action    { return Action{Kind: KindSwap, I: i, J: j} }
func NewShiftRight(i int) Action { return Action{Kind: KindShiftRight, I: i} }

func (a Action) String() string {
	switch a.Kind {
	case KindCompare, KindSwap:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.I, a.J)
	case KindInsert:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.I, a.Value)
	default:
		return fmt.Sprintf("%s(%d)", a.Kind, a.I)
	}
}

// Validate checks the payload against a sequence of length n.
func (a Action) Validate(n int) error {
	if !a.Kind.Valid() {
		return fmt.Errorf("%w: kind %d", ErrMalformedAction, int(a.Kind))
	}
	if a.I < 0 || a.I >= n {
		return fmt.Errorf("%w: %s index %d (n=%d)", ErrIndexOutOfRange, a.Kind, a.I, n)
	}
	switch a.Kind {
	case KindCompare, KindSwap:
		if a.J < 0 || a.J >= n {
			return fmt.Errorf("%w: %s index %d (n=%d)", ErrIndexOutOfRange, a.Kind, a.J, n)
		}
	case KindShiftRight:
		if a.I+1 >= n {
			return fmt.Errorf("%w: %s target %d (n=%d)", ErrIndexOutOfRange, a.Kind, a.I+1, n)
		}
	}
	return nil
}

// MustValidate panics on an invalid action. A bad action is a defect in the
// engine that produced it, never a runtime condition.
func (a Action) MustValidate(n int) {
	if err := a.Validate(n); err != nil {
		panic(err)
	}
}

// Recorder receives actions synchronously, in emission order.
type Recorder func(Action)

package metrics

import (
	"strings"

	"github.com/san-kum/sortviz/internal/sorter"
)

type KindCount struct {
	name  string
	kind  sorter.Kind
	count int
}

func NewKindCount(k sorter.Kind) *KindCount {
	return &KindCount{
		name: "count_" + strings.ToLower(k.String()),
		kind: k,
	}
}

func (c *KindCount) Name() string {
	return c.name
}

func (c *KindCount) Observe(a sorter.Action) {
	if a.Kind == c.kind {
		c.count++
	}
}

func (c *KindCount) Value() float64 {
	return float64(c.count)
}

func (c *KindCount) Reset() {
	c.count = 0
}

// Displacements counts element writes: one per shift and one per insert.
type Displacements struct {
	name  string
	count int
}

func NewDisplacements() *Displacements {
	return &Displacements{name: "displacements"}
}

func (d *Displacements) Name() string {
	return d.name
}

func (d *Displacements) Observe(a sorter.Action) {
	if a.Kind == sorter.KindShiftRight || a.Kind == sorter.KindInsert {
		d.count++
	}
}

func (d *Displacements) Value() float64 {
	return float64(d.count)
}

func (d *Displacements) Reset() {
	d.count = 0
}

// Package section builds the logical tables of a report from a setup.
//
// The tables are target independent: a Policy decides which values are visible,
// the report formatters decide how a table is written.
package section

import (
	"github.com/samber/lo"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Row is a labeled table row. Hidden values are empty cells.
type Row struct {
	Label string
	Cells []string
}

// Table is one section of a report.
type Table struct {
	Key     string // field path of the section, e.g. "tune.tires"
	Title   string
	NA      bool // section is marked not applicable, Rows is empty
	Headers []string
	Align   Align // alignment of the value columns
	Rows    []Row
}

// Empty reports whether the table has nothing to show.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Policy decides whether a value is shown. Key is the field path, e.g. "brakes.pressure".
type Policy interface {
	Visible(key string, v model.Value) bool
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(key string, v model.Value) bool

func (f PolicyFunc) Visible(key string, v model.Value) bool {
	return f(key, v)
}

// SentinelPolicy hides values which are blank or one of N/A, Stock, None.
var SentinelPolicy Policy = PolicyFunc(func(_ string, v model.Value) bool {
	return !v.IsUnset()
})

// DefaultsPolicy hides sentinel values and values equal to the configured
// factory default of a field. Defaults are compared numerically.
type DefaultsPolicy struct {
	Defaults map[string]float64
}

func (p DefaultsPolicy) Visible(key string, v model.Value) bool {
	if v.IsUnset() {
		return false
	}
	if d, ok := p.Defaults[key]; ok {
		if f, parsed := v.Parsed().Get(); parsed && f == d {
			return false
		}
	}
	return true
}

// NonEmpty returns the tables which have rows or are marked not applicable.
func NonEmpty(tables []Table) []Table {
	return lo.Filter(tables, func(t Table, _ int) bool {
		return t.NA || !t.Empty()
	})
}

// AnyRows reports whether at least one table has rows.
func AnyRows(tables []Table) bool {
	return lo.SomeBy(tables, func(t Table) bool { return !t.Empty() })
}

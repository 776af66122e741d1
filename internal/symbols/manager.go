package symbols

import (
	"maps"
	"slices"

	"github.com/retroenv/retrogolib/set"
)

// Tracker records the codes that could not be resolved to a name during a
// decoding run, per table.
type Tracker struct {
	unresolved map[string]set.Set[uint32]
}

// NewTracker creates a new unresolved symbol tracker.
func NewTracker() *Tracker {
	return &Tracker{
		unresolved: make(map[string]set.Set[uint32]),
	}
}

// Resolve returns the name of the code in the table. A code without a name is
// marked as unresolved.
func (t *Tracker) Resolve(table *Table, code uint32) (string, bool) {
	name, ok := table.Lookup(code)
	if !ok {
		t.MarkUnresolved(table.Name(), code)
	}
	return name, ok
}

// MarkUnresolved marks a code of a table as unresolved.
func (t *Tracker) MarkUnresolved(table string, code uint32) {
	codes, ok := t.unresolved[table]
	if !ok {
		codes = set.New[uint32]()
		t.unresolved[table] = codes
	}
	codes.Add(code)
}

// Tables returns the names of all tables with unresolved codes, sorted.
func (t *Tracker) Tables() []string {
	return slices.Sorted(maps.Keys(t.unresolved))
}

// Unresolved returns the unresolved codes of a table in ascending order.
func (t *Tracker) Unresolved(table string) []uint32 {
	codes := make([]uint32, 0, len(t.unresolved[table]))
	for code := range t.unresolved[table] {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

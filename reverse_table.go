package braille

import (
	"math/bits"
	"sort"
)

const cellCount = 64 // number of distinct six-dot cells

// ReverseTable maps cells back to symbols. Each cell used by at least one
// non-blank character of the symbol table has exactly one entry, chosen by
// rank (see RankOf).
//
// Slots are indexed directly by cell mask.
type ReverseTable struct {
	slots      [cellCount]Symbol
	present    uint64 // bit i set if slots[i] is occupied
	collisions []Collision
}

// Collision records a cell shared by more than one symbol.
type Collision struct {
	Cell   Cell
	Winner Symbol
	Losers []Symbol // in descending priority
}

type candidate struct {
	cell Cell
	sym  Symbol
}

// BuildReverseTable inverts a symbol table. Markers and characters mapping to
// the blank cell are not included.
//
// Construction runs in two passes: first all candidates are collected, then
// for every cell the highest-ranking candidate is selected. The result does
// not depend on the iteration order of the symbol table.
func BuildReverseTable(t *SymbolTable) *ReverseTable {
	var candidates []candidate
	t.Range(func(s Symbol, c Cell) bool {
		if s.IsMarker() || c.IsBlank() {
			return true
		}
		candidates = append(candidates, candidate{cell: c, sym: s})
		return true
	})
	rt := resolve(candidates)
	tracer().Infof("reverse table for %q: %d cells, %d collisions", t.Identifier, rt.Len(), len(rt.collisions))
	return rt
}

// resolve groups candidates by cell and selects the highest-ranking symbol
// of every group.
func resolve(candidates []candidate) *ReverseTable {
	var groups [cellCount][]Symbol
	for _, cand := range candidates {
		groups[cand.cell&allDots] = append(groups[cand.cell&allDots], cand.sym)
	}
	rt := &ReverseTable{}
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(a, b int) bool { return outranks(group[a], group[b]) })
		rt.slots[i] = group[0]
		rt.present |= 1 << uint(i)
		if len(group) > 1 {
			c := Collision{Cell: Cell(i), Winner: group[0], Losers: append([]Symbol(nil), group[1:]...)}
			rt.collisions = append(rt.collisions, c)
			tracer().Debugf("cell %s shared by %d symbols, %q wins", c.Cell, len(group), c.Winner)
		}
	}
	return rt
}

// Lookup returns the symbol a cell reads as.
func (rt *ReverseTable) Lookup(c Cell) (Symbol, bool) {
	i := c & allDots
	if rt.present&(1<<uint(i)) == 0 {
		return 0, false
	}
	return rt.slots[i], true
}

// Len returns the number of cells with an entry.
func (rt *ReverseTable) Len() int {
	return bits.OnesCount64(rt.present)
}

// Collisions lists the cells shared by more than one symbol, ordered by cell.
func (rt *ReverseTable) Collisions() []Collision {
	return append([]Collision(nil), rt.collisions...)
}

// Range calls fn for every entry in ascending cell order until fn returns false.
func (rt *ReverseTable) Range(fn func(c Cell, s Symbol) bool) {
	for i := 0; i < cellCount; i++ {
		if rt.present&(1<<uint(i)) == 0 {
			continue
		}
		if !fn(Cell(i), rt.slots[i]) {
			return
		}
	}
}

package runemap

import "sort"

const present = 0x80 // flag bit marking an occupied slot

// CellMap maps code points to 6-dot cell masks (0..63).
// BMP code points use a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// A slot value of 0 means "absent". Occupied slots carry the present flag,
// so the blank cell (mask 0) is distinguishable from a missing entry.
// Code points outside the BMP are kept in a small side map.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 bytes
type CellMap struct {
	Top    [256]uint16 // page index (1-based); 0 means none
	Pages  []uint8     // flat: NumPages*256
	astral map[rune]uint8
	size   int
}

// Get returns the cell mask stored for r.
func (m *CellMap) Get(r rune) (uint8, bool) {
	if r < 0 {
		return 0, false
	}
	if r > 0xFFFF {
		v, ok := m.astral[r]
		return v, ok
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0, false
	}
	v := m.Pages[int(pi-1)<<8+int(r&0xFF)]
	if v&present == 0 {
		return 0, false
	}
	return v &^ present, true
}

// NumPages returns the number of allocated pages.
func (m *CellMap) NumPages() int { return len(m.Pages) >> 8 }

// Len returns the number of mapped code points.
func (m *CellMap) Len() int { return m.size }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *CellMap) EnsurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint8, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set maps r to mask. Masks are truncated to six bits.
// Negative code points are ignored.
func (m *CellMap) Set(r rune, mask uint8) {
	if r < 0 {
		return
	}
	mask &= 0x3F
	if r > 0xFFFF {
		if m.astral == nil {
			m.astral = make(map[rune]uint8)
		}
		if _, ok := m.astral[r]; !ok {
			m.size++
		}
		m.astral[r] = mask
		return
	}
	pi := m.EnsurePage(uint16(r >> 8))
	slot := int(pi-1)<<8 + int(r&0xFF)
	if m.Pages[slot]&present == 0 {
		m.size++
	}
	m.Pages[slot] = mask | present
}

// Range calls fn for every mapped code point in ascending code point order
// until fn returns false.
func (m *CellMap) Range(fn func(r rune, mask uint8) bool) {
	for hi := 0; hi < len(m.Top); hi++ {
		pi := m.Top[hi]
		if pi == 0 {
			continue
		}
		base := int(pi-1) << 8
		for lo := 0; lo < 256; lo++ {
			v := m.Pages[base+lo]
			if v&present == 0 {
				continue
			}
			if !fn(rune(hi<<8|lo), v&^present) {
				return
			}
		}
	}
	if len(m.astral) == 0 {
		return
	}
	keys := make([]rune, 0, len(m.astral))
	for r := range m.astral {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, r := range keys {
		if !fn(r, m.astral[r]) {
			return
		}
	}
}

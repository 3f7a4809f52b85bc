package solver

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Entry caches the proven score bounds for a position, plus the column that
// produced the best score as an ordering hint. Bounds are tiny: no score on
// a single-word board leaves int8.
type Entry struct {
	Lower int8
	Upper int8
	Best  int8 // column hint, -1 when unknown
}

type slot struct {
	key  uint64
	e    Entry
	used bool
}

// Table is a fixed-capacity transposition table. Capacity is rounded up to
// a power of two so slot selection is a mask; colliding keys overwrite each
// other outright. Losing an entry only costs time, never correctness, so
// the replacement policy stays that simple.
//
// Writes are guarded by striped locks so a single table can back the
// parallel root split.
type Table struct {
	mask    uint64
	slots   []slot
	stripes []sync.RWMutex
	smask   uint64
}

const minTableSize = 64

// NewTable allocates a table with at least size slots.
func NewTable(size int) *Table {
	if size < minTableSize {
		size = minTableSize
	}
	n := 1
	for n < size {
		n <<= 1
	}

	stripes := 64
	if n < stripes {
		stripes = n
	}
	return &Table{
		mask:    uint64(n - 1),
		slots:   make([]slot, n),
		stripes: make([]sync.RWMutex, stripes),
		smask:   uint64(stripes - 1),
	}
}

// Size is the slot capacity.
func (t *Table) Size() int { return len(t.slots) }

func (t *Table) index(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:]) & t.mask
}

// Lookup returns the entry stored for key, if the slot still holds it.
func (t *Table) Lookup(key uint64) (Entry, bool) {
	idx := t.index(key)
	stripe := &t.stripes[idx&t.smask]
	stripe.RLock()
	defer stripe.RUnlock()

	s := t.slots[idx]
	if !s.used || s.key != key {
		return Entry{}, false
	}
	return s.e, true
}

// Store writes the entry for key, evicting whatever occupied the slot.
func (t *Table) Store(key uint64, e Entry) {
	idx := t.index(key)
	stripe := &t.stripes[idx&t.smask]
	stripe.Lock()
	defer stripe.Unlock()

	t.slots[idx] = slot{key: key, e: e, used: true}
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.stripes {
		t.stripes[i].Lock()
	}
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	for i := range t.stripes {
		t.stripes[i].Unlock()
	}
}

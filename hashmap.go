package hashmap

import (
	"github.com/apex/log"
	"github.com/efficientgo/core/errors"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type slot struct {
	state slotState
	key   string
	value string
}

// Table is an open addressing hash table from string keys to string values.
// Collisions are resolved with double hashing and the capacity is always
// prime. A Table is not safe for concurrent use.
type Table struct {
	opts Options
	log  log.Interface

	requested  int
	capacity   int
	count      int
	tombstones int
	slots      []slot

	grows    int
	shrinks  int
	rehashes int
	closed   bool
}

// Stats is a snapshot of a table's bookkeeping.
type Stats struct {
	Requested  int
	Capacity   int
	Count      int
	Tombstones int
	LoadFactor float64
	Grows      int
	Shrinks    int
	Rehashes   int
}

// New creates an empty table sized to the next prime at or above the
// initial capacity.
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	capacity := o.Oracle.Next(o.InitialCapacity)
	if o.MaxCapacity != 0 && capacity > o.MaxCapacity {
		return nil, errors.Wrapf(ErrInvalidConfig, "initial capacity rounds to %d slots, max %d", capacity, o.MaxCapacity)
	}

	t := &Table{
		opts:      o,
		log:       o.Logger,
		requested: o.InitialCapacity,
		capacity:  capacity,
		slots:     make([]slot, capacity),
	}
	o.Observer.Sized(t.capacity, t.count)
	return t, nil
}

// Close releases every entry and the slot array. Insert fails with ErrClosed
// afterwards; Search and Delete find nothing.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.slots = nil
	t.count = 0
	t.tombstones = 0
	t.capacity = 0
	t.closed = true
	return nil
}

// Insert adds key with value, or replaces the value if key is present.
func (t *Table) Insert(key, value string) error {
	if t.closed {
		return ErrClosed
	}

	idx, found, free, attempts := t.lookup(key)
	if found {
		t.slots[idx].value = value
		t.opts.Observer.Observe("insert", Updated, attempts)
		return nil
	}

	for t.overGrowLoad(t.count + 1) {
		before := t.capacity
		if err := t.resize(t.requested*2, Grow); err != nil {
			return errors.Wrapf(err, "inserting key %q", key)
		}
		if t.capacity == before {
			break
		}
		_, _, free, attempts = t.lookup(key)
	}

	// Occupied and tombstone slots together stay under the grow watermark,
	// so a miss always reaches an empty slot.
	if free >= 0 && t.slots[free].state == slotEmpty && t.tombstones > 0 &&
		t.overGrowLoad(t.count+t.tombstones+1) {
		if err := t.rebuild(t.requested, t.capacity, Rehash); err != nil {
			return errors.Wrapf(err, "inserting key %q", key)
		}
		_, _, free, attempts = t.lookup(key)
	}

	if free < 0 {
		t.opts.Observer.Observe("insert", Failed, attempts)
		return errors.Wrapf(ErrTableFull, "inserting key %q after %d probes", key, attempts)
	}
	t.opts.Observer.Observe("insert", Added, attempts)

	s := &t.slots[free]
	if s.state == slotTombstone {
		t.tombstones--
	}
	*s = slot{state: slotOccupied, key: key, value: value}
	t.count++
	t.opts.Observer.Sized(t.capacity, t.count)
	return nil
}

// Search returns the value stored under key.
func (t *Table) Search(key string) (string, bool) {
	if t.closed {
		return "", false
	}
	idx, found, _, attempts := t.lookup(key)
	if !found {
		t.opts.Observer.Observe("search", Miss, attempts)
		return "", false
	}
	t.opts.Observer.Observe("search", Hit, attempts)
	return t.slots[idx].value, true
}

// Delete removes key and reports whether it was present. A sparse table is
// shrunk before the key is looked up, even when the key turns out absent.
func (t *Table) Delete(key string) bool {
	if t.closed {
		return false
	}

	if float64(t.count) < t.opts.ShrinkLoad*float64(t.capacity) {
		// A failed shrink leaves the table as it was; the delete goes ahead.
		if err := t.resize(t.requested/2, Shrink); err != nil {
			t.log.WithError(err).Warn("shrinking table")
		}
	}

	idx, found, _, attempts := t.lookup(key)
	if !found {
		t.opts.Observer.Observe("delete", Miss, attempts)
		return false
	}
	t.opts.Observer.Observe("delete", Hit, attempts)

	t.slots[idx] = slot{state: slotTombstone}
	t.count--
	t.tombstones++
	t.opts.Observer.Sized(t.capacity, t.count)
	return true
}

// Len returns the number of stored keys.
func (t *Table) Len() int { return t.count }

// Cap returns the length of the slot array.
func (t *Table) Cap() int { return t.capacity }

// Stats returns a snapshot of the table's bookkeeping.
func (t *Table) Stats() Stats {
	s := Stats{
		Requested:  t.requested,
		Capacity:   t.capacity,
		Count:      t.count,
		Tombstones: t.tombstones,
		Grows:      t.grows,
		Shrinks:    t.shrinks,
		Rehashes:   t.rehashes,
	}
	if t.capacity > 0 {
		s.LoadFactor = float64(t.count) / float64(t.capacity)
	}
	return s
}

func (t *Table) overGrowLoad(count int) bool {
	return float64(count) > t.opts.GrowLoad*float64(t.capacity)
}

// lookup walks the probe sequence of key until it finds key, reaches an
// empty slot or has visited every slot. free is the first tombstone or empty
// slot on the path, or -1.
func (t *Table) lookup(key string) (index int, found bool, free int, attempts int) {
	seq := newProbeSeq(t.opts.Hasher, key, t.capacity)
	free = -1
	for attempts < t.capacity {
		i := seq.at(attempts)
		attempts++

		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = i
			}
			return -1, false, free, attempts
		case slotTombstone:
			if free < 0 {
				free = i
			}
		case slotOccupied:
			if s.key == key {
				return i, true, free, attempts
			}
		}
	}
	return -1, false, free, attempts
}

// resize rebuilds the slot array at the next prime at or above requested.
// Tombstones are dropped. It is a no-op when the clamped request is
// unchanged or the new array could not hold the current entries.
func (t *Table) resize(requested int, dir ResizeDirection) error {
	if requested < t.opts.MinCapacity {
		requested = t.opts.MinCapacity
	}
	if requested == t.requested {
		return nil
	}

	capacity := t.opts.Oracle.Next(requested)
	if t.opts.MaxCapacity != 0 && capacity > t.opts.MaxCapacity {
		return errors.Wrapf(ErrCapacityExceeded, "resizing to %d slots, max %d", capacity, t.opts.MaxCapacity)
	}
	if float64(t.count) > t.opts.GrowLoad*float64(capacity) {
		return nil
	}
	return t.rebuild(requested, capacity, dir)
}

// rebuild rehashes every entry into a fresh array of capacity slots and
// records requested as the new target.
func (t *Table) rebuild(requested, capacity int, dir ResizeDirection) error {
	t.log.WithFields(log.Fields{
		"direction":  dir,
		"from":       t.capacity,
		"to":         capacity,
		"count":      t.count,
		"tombstones": t.tombstones,
	}).Debug("resizing table")

	slots := make([]slot, capacity)
	for _, s := range t.slots {
		if s.state != slotOccupied {
			continue
		}
		seq := newProbeSeq(t.opts.Hasher, s.key, capacity)
		placed := false
		for attempt := 0; attempt < capacity; attempt++ {
			i := seq.at(attempt)
			if slots[i].state == slotEmpty {
				slots[i] = s
				placed = true
				break
			}
		}
		if !placed {
			return errors.Wrapf(ErrTableFull, "rehashing key %q into %d slots", s.key, capacity)
		}
	}

	from := t.capacity
	t.slots = slots
	t.capacity = capacity
	t.requested = requested
	t.tombstones = 0
	switch dir {
	case Grow:
		t.grows++
	case Shrink:
		t.shrinks++
	case Rehash:
		t.rehashes++
	}

	t.opts.Observer.Resized(dir, from, capacity)
	t.opts.Observer.Sized(t.capacity, t.count)
	return nil
}

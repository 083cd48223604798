package Maps

import (
	Go_Structs "github.com/s-d-ferro/go-structs"
)

// HashFunc maps a string key to an unsigned integer; the map reduces it
// modulo its capacity.
type HashFunc func(key string) uint

type slot[V any] struct {
	key string
	val V
}

// HashMap maps string keys to V over a fixed-capacity slot array with open
// addressing. Collisions are resolved by double hashing: the probe
// sequence for a key is h1(key), h1(key)+s, h1(key)+2s, ... modulo the
// capacity, where the stride s comes from a second, independent hash, so
// keys sharing a start slot still follow different sequences. Every probe
// loop is bounded by capacity steps.
// Slot state lives in two bit sets: occupied, and buried for tombstones.
// Remove buries its slot instead of emptying it, because a later lookup
// for a different key may have to probe across it; Put may reclaim a
// buried slot once the key is known to be absent.
// Capacity is fixed at creation; a full map rejects new keys rather than
// rehash. Not safe for concurrent use.
type HashMap[V any] struct {
	slots            *Go_Structs.Vector[slot[V]]
	occupied, buried Go_Structs.BitSet
	hash, probe      HashFunc
	sz               int
}

// New HashMap holding at most capacity entries, hashing with DJB2 and
// striding with XXH until told otherwise.
func New[V any](capacity int) (*HashMap[V], error) {
	slots, err := Go_Structs.NewVector[slot[V]](capacity)
	if err != nil {
		return nil, err
	}
	return &HashMap[V]{
		slots:    slots,
		occupied: Go_Structs.NewBitSet(capacity),
		buried:   Go_Structs.NewBitSet(capacity),
		hash:     Go_Structs.DJB2,
		probe:    Go_Structs.XXH,
	}, nil
}

func (u *HashMap[V]) Capacity() int {
	return u.slots.Len()
}

func (u *HashMap[V]) Size() int {
	return u.sz
}

func (u *HashMap[V]) IsEmpty() bool {
	return u.sz == 0
}

// stride for key; never 0 modulo the capacity, or the probe sequence would
// spin on a single slot.
func (u *HashMap[V]) stride(key string) int {
	if c := u.Capacity(); c > 1 {
		return 1 + int(u.probe(key)%uint(c-1))
	}
	return 1
}

// locate the slot holding key, or -1. Probes across buried slots and stops
// only at a never-occupied one.
func (u *HashMap[V]) locate(key string) int {
	c := u.Capacity()
	i := int(u.hash(key) % uint(c))
	step := u.stride(key)
	for probes := 0; probes < c; probes++ {
		if u.occupied.Get(i) {
			if u.slots.At(i).key == key {
				return i
			}
		} else if !u.buried.Get(i) {
			break
		}
		i = (i + step) % c
	}
	return -1
}

// Put key->val. An existing key has its value replaced; a new key takes
// the first free (empty or buried) slot on its probe sequence. Returns
// false only when the key is absent and no slot on the sequence is free.
func (u *HashMap[V]) Put(key string, val V) bool {
	c := u.Capacity()
	i := int(u.hash(key) % uint(c))
	step := u.stride(key)
	free := -1
	for probes := 0; probes < c; probes++ {
		if u.occupied.Get(i) {
			if u.slots.At(i).key == key {
				u.slots.Set(i, slot[V]{key, val})
				return true
			}
		} else {
			if free < 0 {
				free = i
			}
			if !u.buried.Get(i) {
				break //key can't be stored past a never-occupied slot
			}
		}
		i = (i + step) % c
	}
	if free < 0 {
		return false
	}
	u.slots.Set(free, slot[V]{key, val})
	u.occupied.Up(free)
	u.buried.Down(free)
	u.sz++
	return true
}

// Get returns a copy of the value stored under key.
func (u *HashMap[V]) Get(key string) (V, bool) {
	if i := u.locate(key); i >= 0 {
		return u.slots.At(i).val, true
	}
	return *new(V), false
}

// Ref returns a pointer to the value stored under key, valid only until
// the next mutating call on the map, or nil when the key is absent.
func (u *HashMap[V]) Ref(key string) *V {
	if i := u.locate(key); i >= 0 {
		return &u.slots.At(i).val
	}
	return nil
}

func (u *HashMap[V]) Has(key string) bool {
	return u.locate(key) >= 0
}

// Remove the entry under key, leaving a tombstone in its slot.
func (u *HashMap[V]) Remove(key string) bool {
	i := u.locate(key)
	if i < 0 {
		return false
	}
	u.slots.Set(i, slot[V]{}) //release the key and value for the collector
	u.occupied.Down(i)
	u.buried.Up(i)
	u.sz--
	return true
}

// Clear every entry and tombstone; capacity and hash functions remain.
func (u *HashMap[V]) Clear() {
	u.slots.Clear()
	u.occupied.Clear()
	u.buried.Clear()
	u.sz = 0
}

// SetHashFunc swaps the primary hash. Fails on a nil function or a
// non-empty map, whose entries were placed by the old hash.
func (u *HashMap[V]) SetHashFunc(h HashFunc) bool {
	if h == nil || u.sz > 0 {
		return false
	}
	u.hash = h
	return true
}

// SetProbeFunc swaps the stride hash, under the same conditions as
// SetHashFunc.
func (u *HashMap[V]) SetProbeFunc(h HashFunc) bool {
	if h == nil || u.sz > 0 {
		return false
	}
	u.probe = h
	return true
}

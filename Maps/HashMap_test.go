package Maps

import (
	"math/rand"
	"strconv"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestHashMap_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -4} {
		if _, err := New[int](c); err == nil {
			t.Errorf("no error for capacity %d", c)
		}
	}
}

// prime capacities below keep every stride coprime with the table, so a
// probe sequence always covers every slot; composite capacities can cut a
// sequence down to a sub cycle and reject a Put early.
func TestHashMap_PutGet(t *testing.T) {
	m, err := New[int](67)
	if err != nil {
		t.Fatal(err)
	}
	content := make(map[string]int)
	for i := 0; i < 48; i++ {
		k, v := strconv.Itoa(rg.Intn(100)), rg.Int()
		if !m.Put(k, v) {
			t.Errorf("failed to put %q", k)
		}
		content[k] = v
	}
	if m.Size() != len(content) {
		t.Errorf("size is %d, want %d", m.Size(), len(content))
	}
	for k, v := range content {
		if got, ok := m.Get(k); !ok || got != v {
			t.Errorf("Get(%q) = (%d,%v), want %d", k, got, ok, v)
		}
	}
	if _, ok := m.Get("no such key"); ok {
		t.Error("Get of an absent key succeeded")
	}
}

func TestHashMap_Replace(t *testing.T) {
	m, _ := New[int](8)
	m.Put("k", 1)
	if !m.Put("k", 2) {
		t.Error("failed to replace an existing key")
	}
	if m.Size() != 1 {
		t.Errorf("size is %d after a replace, want 1", m.Size())
	}
	if v, _ := m.Get("k"); v != 2 {
		t.Errorf("value is %d after a replace, want 2", v)
	}
}

// "a" and "i" hash to the same start slot modulo 8 under DJB2, so the
// second insert must follow its probe sequence past the first.
func TestHashMap_Collision(t *testing.T) {
	m, _ := New[int](8)
	if !m.Put("a", 1) || !m.Put("i", 2) {
		t.Fatal("failed to insert colliding keys")
	}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("Get(\"a\") = (%d,%v), want 1", v, ok)
	}
	if v, ok := m.Get("i"); !ok || v != 2 {
		t.Errorf("Get(\"i\") = (%d,%v), want 2", v, ok)
	}
}

// removing the first key of a colliding pair must not cut the second off:
// its lookup has to probe across the tombstone.
func TestHashMap_Tombstone(t *testing.T) {
	m, _ := New[int](8)
	m.Put("a", 1)
	m.Put("i", 2)
	if !m.Remove("a") {
		t.Fatal("failed to remove \"a\"")
	}
	if v, ok := m.Get("i"); !ok || v != 2 {
		t.Errorf("Get(\"i\") = (%d,%v) after removing \"a\", want 2", v, ok)
	}
	if m.Has("a") {
		t.Error("removed key still present")
	}
	// the buried slot is reusable
	if !m.Put("a", 3) {
		t.Error("failed to reinsert into a buried slot")
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Errorf("reinserted value is %d, want 3", v)
	}
	if m.Size() != 2 {
		t.Errorf("size is %d, want 2", m.Size())
	}
}

// constant hash and stride chain every key through the same sequence,
// exercising the probe loop bounds directly.
func TestHashMap_SingleChain(t *testing.T) {
	m, _ := New[int](4)
	if !m.SetHashFunc(func(string) uint { return 0 }) {
		t.Fatal("failed to set the hash on an empty map")
	}
	if !m.SetProbeFunc(func(string) uint { return 0 }) { //stride stays 1
		t.Fatal("failed to set the probe on an empty map")
	}
	for i := 0; i < 4; i++ {
		if !m.Put(strconv.Itoa(i), i) {
			t.Errorf("failed to put key %d into a non full map", i)
		}
	}
	if m.Put("overflow", 9) {
		t.Error("put into a full map succeeded")
	}
	for i := 0; i < 4; i++ {
		if v, ok := m.Get(strconv.Itoa(i)); !ok || v != i {
			t.Errorf("Get(%d) = (%d,%v) on the chained map", i, v, ok)
		}
	}
	if m.Has("overflow") {
		t.Error("rejected key is present")
	}
	// free a middle slot and make sure the chain survives
	if !m.Remove("1") {
		t.Fatal("failed to remove \"1\"")
	}
	if !m.Has("3") {
		t.Error("tombstone cut off the tail of the chain")
	}
	if !m.Put("4", 4) {
		t.Error("failed to reuse the buried slot")
	}
	if !m.Has("3") || !m.Has("4") {
		t.Error("chain broken after reusing the buried slot")
	}
}

func TestHashMap_SetFuncs(t *testing.T) {
	m, _ := New[int](8)
	if m.SetHashFunc(nil) || m.SetProbeFunc(nil) {
		t.Error("set a nil hash function")
	}
	m.Put("k", 1)
	if m.SetHashFunc(func(string) uint { return 0 }) {
		t.Error("swapped the hash of a non empty map")
	}
	if m.SetProbeFunc(func(string) uint { return 0 }) {
		t.Error("swapped the probe of a non empty map")
	}
}

func TestHashMap_Ref(t *testing.T) {
	m, _ := New[int](8)
	m.Put("k", 1)
	p := m.Ref("k")
	if p == nil {
		t.Fatal("Ref of a present key is nil")
	}
	*p = 7
	if v, _ := m.Get("k"); v != 7 {
		t.Errorf("value is %d after writing through Ref, want 7", v)
	}
	if m.Ref("absent") != nil {
		t.Error("Ref of an absent key isn't nil")
	}
}

func TestHashMap_Remove(t *testing.T) {
	m, _ := New[int](37)
	for i := 0; i < 20; i++ {
		m.Put(strconv.Itoa(i), i)
	}
	for i := 0; i < 20; i += 2 {
		if !m.Remove(strconv.Itoa(i)) {
			t.Errorf("failed to remove key %d", i)
		}
	}
	if m.Remove("0") {
		t.Error("removed a key twice")
	}
	if m.Size() != 10 {
		t.Errorf("size is %d, want 10", m.Size())
	}
	for i := 0; i < 20; i++ {
		if m.Has(strconv.Itoa(i)) != (i%2 == 1) {
			t.Errorf("key %d presence is wrong after removals", i)
		}
	}
}

// fill, empty and refill the whole table: Put must keep working once every
// slot has been buried at least once.
func TestHashMap_Churn(t *testing.T) {
	const c = 17
	m, _ := New[int](c)
	for round := 0; round < 5; round++ {
		for i := 0; i < c; i++ {
			k := strconv.Itoa(round*c + i)
			if !m.Put(k, i) {
				t.Fatalf("failed to put %q in round %d", k, round)
			}
		}
		if m.Size() != c {
			t.Fatalf("size is %d after filling, want %d", m.Size(), c)
		}
		for i := 0; i < c; i++ {
			k := strconv.Itoa(round*c + i)
			if !m.Remove(k) {
				t.Fatalf("failed to remove %q in round %d", k, round)
			}
		}
		if m.Size() != 0 {
			t.Fatalf("size is %d after emptying, want 0", m.Size())
		}
	}
}

func TestHashMap_Clear(t *testing.T) {
	m, _ := New[int](8)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Remove("a") //leaves a tombstone for Clear to wipe
	m.Clear()
	if !m.IsEmpty() || m.Size() != 0 {
		t.Error("map isn't empty after Clear")
	}
	if m.Capacity() != 8 {
		t.Errorf("capacity is %d after Clear, want 8", m.Capacity())
	}
	if !m.Put("c", 3) {
		t.Error("map unusable after Clear")
	}
	if v, _ := m.Get("c"); v != 3 {
		t.Errorf("value is %d after Clear and Put, want 3", v)
	}
}

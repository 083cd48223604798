package Queues

import (
	"testing"
)

func TestDeque_BothEnds(t *testing.T) {
	d := NewDeque[int](0)
	// build 1 2 3 4 by alternating ends
	d.PushBack(3)
	d.PushFront(2)
	d.PushBack(4)
	d.PushFront(1)
	if d.Size() != 4 {
		t.Errorf("size is %d, want 4", d.Size())
	}
	if v, _ := d.PeekFront(); v != 1 {
		t.Errorf("front is %d, want 1", v)
	}
	if v, _ := d.PeekBack(); v != 4 {
		t.Errorf("back is %d, want 4", v)
	}
	if v, _ := d.PopFront(); v != 1 {
		t.Errorf("popped %d from the front, want 1", v)
	}
	if v, _ := d.PopBack(); v != 4 {
		t.Errorf("popped %d from the back, want 4", v)
	}
	if v, _ := d.PopFront(); v != 2 {
		t.Errorf("popped %d from the front, want 2", v)
	}
	if v, _ := d.PopBack(); v != 3 {
		t.Errorf("popped %d from the back, want 3", v)
	}
	if !d.Empty() {
		t.Error("deque isn't empty after popping everything")
	}
}

// grow across many front pushes so the head wraps backward through several
// resizes.
func TestDeque_GrowFront(t *testing.T) {
	const n = 500
	d := NewDeque[int](1)
	for i := 0; i < n; i++ {
		d.PushFront(i)
	}
	for i := n - 1; i >= 0; i-- {
		v, err := d.PopFront()
		if err != nil {
			t.Fatal(err)
		}
		if v != i {
			t.Errorf("popped %d, want %d", v, i)
		}
	}
}

func TestDeque_AsQueue(t *testing.T) {
	var q Queue[int] = NewDeque[int](0)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for i := 0; i < 10; i++ {
		if v, err := q.Pop(); err != nil || v != i {
			t.Errorf("popped (%d,%v), want %d", v, err, i)
		}
	}
}

func TestDeque_Empty(t *testing.T) {
	d := NewDeque[int](2)
	if _, err := d.PopFront(); err == nil {
		t.Error("PopFront on empty deque gave no error")
	}
	if _, err := d.PopBack(); err == nil {
		t.Error("PopBack on empty deque gave no error")
	}
	if _, err := d.PeekFront(); err == nil {
		t.Error("PeekFront on empty deque gave no error")
	}
	if _, err := d.PeekBack(); err == nil {
		t.Error("PeekBack on empty deque gave no error")
	}
}

func TestDeque_Clear(t *testing.T) {
	d := NewDeque[int](0)
	d.PushBack(1)
	d.PushFront(2)
	d.Clear()
	if !d.Empty() {
		t.Error("deque isn't empty after Clear")
	}
	d.PushBack(3)
	if v, _ := d.PopFront(); v != 3 {
		t.Errorf("popped %d after Clear, want 3", v)
	}
}

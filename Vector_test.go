package Go_Structs

import (
	"testing"
)

func TestVector_New(t *testing.T) {
	v, err := NewVector[int](8)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 8 {
		t.Errorf("length is %d, want 8", v.Len())
	}
	for i := 0; i < 8; i++ {
		if x, ok := v.Get(i); !ok || x != 0 {
			t.Errorf("slot %d is (%d,%v), want zero value", i, x, ok)
		}
	}
}

func TestVector_InvalidSize(t *testing.T) {
	for _, sz := range []int{0, -1} {
		if _, err := NewVector[int](sz); err == nil {
			t.Errorf("no error for size %d", sz)
		}
	}
}

func TestVector_SetGet(t *testing.T) {
	const n = 100
	v, _ := NewVector[int](n)
	content := make(map[int]int)
	for i := 0; i < n; i++ {
		j, x := rg.Intn(n), rg.Int()
		if !v.Set(j, x) {
			t.Errorf("failed to set slot %d", j)
		}
		content[j] = x
	}
	for j, x := range content {
		if y, ok := v.Get(j); !ok || y != x {
			t.Errorf("slot %d is (%d,%v), want %d", j, y, ok, x)
		}
	}
}

func TestVector_OutOfRange(t *testing.T) {
	v, _ := NewVector[int](4)
	if _, ok := v.Get(4); ok {
		t.Error("Get past the end succeeded")
	}
	if _, ok := v.Get(-1); ok {
		t.Error("Get at -1 succeeded")
	}
	if v.Set(4, 1) {
		t.Error("Set past the end succeeded")
	}
	if v.At(4) != nil {
		t.Error("At past the end returned a pointer")
	}
}

func TestVector_At(t *testing.T) {
	v, _ := NewVector[int](4)
	*v.At(2) = 9
	if x, _ := v.Get(2); x != 9 {
		t.Errorf("slot 2 is %d after writing through At, want 9", x)
	}
}

func TestVector_Clear(t *testing.T) {
	v, _ := NewVector[int](4)
	for i := 0; i < 4; i++ {
		v.Set(i, i+1)
	}
	v.Clear()
	if v.Len() != 4 {
		t.Errorf("length is %d after Clear, want 4", v.Len())
	}
	for i := 0; i < 4; i++ {
		if x, _ := v.Get(i); x != 0 {
			t.Errorf("slot %d is %d after Clear", i, x)
		}
	}
}

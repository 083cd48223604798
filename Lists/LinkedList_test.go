package Lists

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

// collect drains an iterator closure into a slice.
func collect[T comparable](f func() (T, bool)) []T {
	var out []T
	for v, ok := f(); ok; v, ok = f() {
		out = append(out, v)
	}
	return out
}

func TestLinkedList_Push(t *testing.T) {
	l := NewLinkedList[int]()
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	assert.Equal(t, uint(3), l.Size())
	assert.Equal(t, []int{1, 2, 3}, collect(l.All()))
	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)
}

func TestLinkedList_InsertAt(t *testing.T) {
	l := NewLinkedList[int]()
	assert.True(t, l.InsertAt(0, 2))  //into empty
	assert.True(t, l.InsertAt(0, 1))  //front
	assert.True(t, l.InsertAt(2, 4))  //append
	assert.True(t, l.InsertAt(2, 3))  //middle
	assert.False(t, l.InsertAt(9, 5)) //past the end
	assert.Equal(t, []int{1, 2, 3, 4}, collect(l.All()))
}

func TestLinkedList_Remove(t *testing.T) {
	l := NewLinkedList[int]()
	for i := 1; i <= 5; i++ {
		l.PushBack(i)
	}
	assert.True(t, l.RemoveFront())
	assert.True(t, l.RemoveBack())
	assert.True(t, l.RemoveAt(1)) //removes 3 from 2 3 4
	assert.Equal(t, []int{2, 4}, collect(l.All()))
	assert.False(t, l.RemoveAt(2))

	// tail must follow a RemoveBack
	l.PushBack(9)
	back, _ := l.Back()
	assert.Equal(t, 9, back)
}

func TestLinkedList_RemoveAll(t *testing.T) {
	l := NewLinkedList[int]()
	l.PushBack(1)
	l.PushBack(2)
	require.True(t, l.RemoveBack())
	require.True(t, l.RemoveBack())
	assert.True(t, l.IsEmpty())
	assert.False(t, l.RemoveBack())
	assert.False(t, l.RemoveFront())
	// list stays usable
	l.PushFront(7)
	v, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestLinkedList_GetHas(t *testing.T) {
	l := NewLinkedList[string]()
	l.PushBack("a")
	l.PushBack("b")
	v, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = l.Get(2)
	assert.False(t, ok)
	assert.True(t, l.Has("a"))
	assert.False(t, l.Has("c"))
}

func TestLinkedList_Random(t *testing.T) {
	l := NewLinkedList[int]()
	var ref []int
	for i := 0; i < 500; i++ {
		v := rg.Intn(1000)
		switch rg.Intn(3) {
		case 0:
			l.PushFront(v)
			ref = append([]int{v}, ref...)
		case 1:
			l.PushBack(v)
			ref = append(ref, v)
		case 2:
			if len(ref) > 0 {
				j := rg.Intn(len(ref))
				require.True(t, l.RemoveAt(uint(j)))
				ref = append(ref[:j], ref[j+1:]...)
			}
		}
	}
	require.Equal(t, uint(len(ref)), l.Size())
	got := collect(l.All())
	for i := range ref {
		assert.Equal(t, ref[i], got[i])
	}
}

func TestLinkedList_Empty(t *testing.T) {
	l := NewLinkedList[int]()
	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	assert.True(t, l.IsEmpty())
	assert.Empty(t, collect(l.All()))
}

func TestLinkedList_Clear(t *testing.T) {
	l := NewLinkedList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, uint(0), l.Size())
	l.PushBack(3)
	assert.Equal(t, []int{3}, collect(l.All()))
}

package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSub(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	b := New(1, 2, 3, 4, 5)
	c := a.Sub(b)
	assert.Equal(t, Slice{.0, .0, .0, .0, .0}, c)
	assert.Equal(t, 5, len(c))
	assert.Equal(t, 5, c.Length())
}

func TestAdd(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	b := New(1, 2, 3, 4, 5)
	c := a.Add(b)
	assert.Equal(t, Slice{2.0, 4.0, 6.0, 8.0, 10.0}, c)
	assert.Equal(t, 5, len(c))
	assert.Equal(t, 5, c.Length())
}

func TestTruncate(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	for i := 5; i > 0; i-- {
		a = a.Truncate(i)
		assert.Equal(t, i, a.Length())
	}
}

func TestPushPop(t *testing.T) {
	a := New(1, 2, 3)
	a.Push(4)
	assert.Equal(t, Slice{1, 2, 3, 4}, a)
	assert.Equal(t, 1.0, a.Pop(0))
	assert.Equal(t, Slice{2, 3, 4}, a)
}

func TestDiff(t *testing.T) {
	a := New(1, 3, 2, 6)
	assert.Equal(t, Slice{2.0, -1.0, 4.0}, a.Diff())
}

func TestTail(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	assert.Equal(t, Slice{4, 5}, a.Tail(2))
	assert.Equal(t, a, a.Tail(10))
}

func TestStats(t *testing.T) {
	a := New(4, 1, 3, 2)
	assert.Equal(t, 10.0, a.Sum())
	assert.Equal(t, 2.5, a.Mean())
	assert.Equal(t, 4.0, a.Max())
	assert.Equal(t, 1.0, a.Min())
	assert.Equal(t, 2.0, a.Last())
}

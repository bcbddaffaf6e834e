package lookup

import (
	"testing"

	"github.com/casualjim/tryget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

type label string

func TestOrdered(t *testing.T) {
	om := NewOrdered[string, any]().
		Set("title", label("shapes")).
		Set("small", square{side: 1}).
		Set("count", 2).
		Set("large", square{side: 3})

	t.Run("try get", func(t *testing.T) {
		res := om.TryGet("count")
		require.True(t, res.OK())
		assert.Equal(t, 2, tryget.As[int](res).Value())

		assert.False(t, om.TryGet("missing").OK())
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		assert.Equal(t, []string{"title", "small", "count", "large"}, om.Keys())
		assert.Equal(t, 4, om.Len())
	})

	t.Run("first narrows in order", func(t *testing.T) {
		res := First[shape](om)
		require.True(t, res.OK())
		assert.Equal(t, 1.0, res.Value().Area())

		assert.False(t, First[float64](om).OK())
	})

	t.Run("select narrows in order", func(t *testing.T) {
		shapes := Select[shape](om)
		require.Len(t, shapes, 2)
		assert.Equal(t, 1.0, shapes[0].Area())
		assert.Equal(t, 9.0, shapes[1].Area())

		assert.Empty(t, Select[bool](om))
	})
}

func TestOrdered_Delete(t *testing.T) {
	om := NewOrdered[int, string]().Set(1, "one").Set(2, "two")

	assert.True(t, om.Delete(1))
	assert.False(t, om.Delete(1))
	assert.False(t, om.TryGet(1).OK())
	assert.Equal(t, []int{2}, om.Keys())
}

func TestOrdered_UpdateKeepsPosition(t *testing.T) {
	om := NewOrdered[string, int]().Set("a", 1).Set("b", 2).Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, om.Keys())
	assert.Equal(t, 3, om.TryGet("a").Value())
}

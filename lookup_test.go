package tryget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGetter map[string]int

func (s stubGetter) Get(key string) (int, bool) {
	v, ok := s[key]
	return v, ok
}

func TestTryGet(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		wantOK bool
		want   any
	}{
		{name: "string", key: "string", wantOK: true, want: "string"},
		{name: "bool", key: "bool", wantOK: true, want: true},
		{name: "int", key: "int", wantOK: true, want: 10},
		{name: "missing", key: "missing", wantOK: false, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TryGet(testSet, tt.key)
			assert.Equal(t, tt.wantOK, res.OK())
			assert.Equal(t, tt.want, res.OrDefault())
		})
	}
}

func TestTryGet_NilMap(t *testing.T) {
	var m map[string]int
	assert.False(t, TryGet(m, "any").OK())
}

func TestFrom(t *testing.T) {
	src := stubGetter{"zero": 0, "ten": 10}

	t.Run("found", func(t *testing.T) {
		res := From[string, int](src, "ten")
		assert.True(t, res.OK())
		assert.Equal(t, 10, res.Value())
	})

	t.Run("found zero value", func(t *testing.T) {
		res := From[string, int](src, "zero")
		assert.True(t, res.OK())
		assert.Equal(t, 0, res.Value())
	})

	t.Run("missing", func(t *testing.T) {
		res := From[string, int](src, "eleven")
		assert.False(t, res.OK())
		assert.Equal(t, -1, res.OrDefault(-1))
	})
}

func TestFromPair(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		res := FromPair("value", true)
		assert.True(t, res.OK())
		assert.Equal(t, "value", res.Value())
	})

	t.Run("not ok drops the value", func(t *testing.T) {
		res := FromPair("stale", false)
		assert.False(t, res.OK())
		assert.Equal(t, "", res.OrDefault())
	})
}

package reflectx

import (
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type typeofImplementer struct{}

func TestTypeOf(t *testing.T) {
	t.Run("concrete types", func(t *testing.T) {
		assert.Equal(t, reflect.TypeOf(0), TypeOf[int]())
		assert.Equal(t, reflect.TypeOf(""), TypeOf[string]())
		assert.Equal(t, reflect.TypeOf(&typeofImplementer{}), TypeOf[*typeofImplementer]())
	})

	t.Run("interface types", func(t *testing.T) {
		typ := TypeOf[io.Reader]()
		assert.Equal(t, reflect.Interface, typ.Kind())
		assert.Equal(t, "io.Reader", typ.String())
	})

	t.Run("empty interface", func(t *testing.T) {
		typ := TypeOf[any]()
		assert.Equal(t, reflect.Interface, typ.Kind())
		assert.Equal(t, 0, typ.NumMethod())
	})
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName[int]())
	assert.Equal(t, "string", TypeName[string]())
	assert.Equal(t, "[]int", TypeName[[]int]())
	assert.Equal(t, "error", TypeName[error]())
	assert.Equal(t, "interface {}", TypeName[any]())
	assert.Equal(t, "*reflectx.typeofImplementer", TypeName[*typeofImplementer]())
}

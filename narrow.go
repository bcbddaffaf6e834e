package tryget

import "github.com/casualjim/tryget/pkg/stdx"

// As narrows a result to the type T.
//
// The narrowed result is successful when r is successful and its value's dynamic
// type is T or, for an interface T, implements it. Its value is then the same
// value viewed as T; otherwise it is the zero value of T. The original result is
// left untouched.
//
// Narrowing composes, so with a *Cat stored behind an Animal interface:
//
//	tryget.As[*Cat](tryget.As[Animal](tryget.As[any](res)))
//
// behaves exactly like tryget.As[*Cat](res). A nil interface value never narrows;
// a typed nil pointer narrows to its own pointer type.
func As[T any, V any](r Result[V]) Result[T] {
	if !r.ok {
		return NotFound[T]()
	}
	v, ok := any(r.value).(T)
	if !ok {
		return NotFound[T]()
	}
	return Found(v)
}

// AsValue is As in comma-ok form. It returns the narrowed value, or the zero
// value of T, together with whether narrowing succeeded:
//
//	if lives, ok := tryget.AsValue[HasNineLives](res); ok { ... }
func AsValue[T any, V any](r Result[V]) (T, bool) {
	n := As[T](r)
	if !n.ok {
		return stdx.Zero[T](), false
	}
	return n.value, true
}

package tryget

import (
	"fmt"
	"log/slog"

	"github.com/casualjim/tryget/pkg/reflectx"
	"github.com/casualjim/tryget/pkg/stdx"
	"github.com/samber/lo"
)

// Result is the outcome of a lookup: a success flag and, when successful, a value.
//
// A Result is immutable once constructed and is safe to share between goroutines.
// The zero value is an unsuccessful result.
//
// The value of an unsuccessful result is never handed out as if it were valid:
// Value and Unwrap panic with a *NoValueError, Get returns one, and OrDefault
// returns the fallback instead.
//
// Example usage:
//
//	res := tryget.TryGet(settings, "timeout")
//	if res.OK() {
//	    fmt.Println(res.Value())
//	}
//
//	seconds := tryget.As[int](res).OrDefault(30)
type Result[T any] struct {
	ok    bool
	value T
}

// Dynamic is the untyped result, for lookups whose values are only known at runtime.
// It shares every method with the typed form; use As to narrow it.
type Dynamic = Result[any]

// New creates a Result from a success flag and a value. No validation is done:
// callers that report ok=false are expected to pass a meaningless value,
// typically the zero value of T.
func New[T any](ok bool, value T) Result[T] {
	return Result[T]{ok: ok, value: value}
}

// Found creates a successful Result holding value.
func Found[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// NotFound creates an unsuccessful Result.
func NotFound[T any]() Result[T] {
	return Result[T]{}
}

// OK reports whether the lookup succeeded. It is the boolean form of the result:
//
//	if res := tryget.TryGet(m, key); res.OK() { ... }
func (r Result[T]) OK() bool {
	return r.ok
}

// Get returns the value and a nil error when the result is successful, or the
// zero value and a *NoValueError otherwise.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		return stdx.Zero[T](), &NoValueError{Type: reflectx.TypeName[T]()}
	}
	return r.value, nil
}

// Value returns the value of a successful result.
// It panics with a *NoValueError when the result is unsuccessful.
func (r Result[T]) Value() T {
	return stdx.Must1(r.Get())
}

// Unwrap converts the result to its plain value. It has the same contract as Value
// and exists for call sites that read as a conversion rather than an accessor.
func (r Result[T]) Unwrap() T {
	return r.Value()
}

// OrDefault returns the value of a successful result. Otherwise it returns the
// first fallback given, or the zero value of T when there is none. It never panics.
func (r Result[T]) OrDefault(fallback ...T) T {
	if r.ok {
		return r.value
	}
	return lo.FirstOr(fallback, stdx.Zero[T]())
}

// Any widens the result to its untyped form.
func (r Result[T]) Any() Dynamic {
	if !r.ok {
		return NotFound[any]()
	}
	return Found[any](r.value)
}

func (r Result[T]) String() string {
	if !r.ok {
		return fmt.Sprintf("NotFound[%s]", reflectx.TypeName[T]())
	}
	return fmt.Sprintf("Found[%s](%v)", reflectx.TypeName[T](), r.value)
}

// LogValue implements slog.LogValuer. The value is only logged for a successful result.
func (r Result[T]) LogValue() slog.Value {
	if !r.ok {
		return slog.GroupValue(
			slog.Bool("ok", false),
			slog.String("type", reflectx.TypeName[T]()),
		)
	}
	return slog.GroupValue(
		slog.Bool("ok", true),
		slog.String("type", reflectx.TypeName[T]()),
		slog.Any("value", r.value),
	)
}

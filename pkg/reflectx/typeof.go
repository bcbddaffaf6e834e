package reflectx

import "reflect"

// TypeOf returns the static type of the generic parameter T.
//
// Unlike reflect.TypeOf on a zero value, this works for interface types:
// the zero value of an interface is nil and carries no type, so the type is
// taken from a pointer to T instead.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeName returns a printable name for the static type T, e.g. "int",
// "*pkg.Cat" or "interface {}".
func TypeName[T any]() string {
	return TypeOf[T]().String()
}

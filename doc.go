/*
Package tryget wraps keyed lookups into typed results that can be narrowed to a
more specific type at runtime, without treating "not found" as an error.

# Basic Usage

A lookup produces a Result, which reports whether it succeeded and holds the value:

	vars := map[string]any{
		"string": "string",
		"bool":   true,
		"int":    10,
	}

	res := tryget.TryGet(vars, "int")
	if res.OK() {
		n := tryget.As[int](res).Value() // 10
	}

	missing := tryget.TryGet(vars, "missing")
	missing.OK()          // false
	missing.OrDefault(42) // 42
	missing.Value()       // panics with *tryget.NoValueError

# Narrowing

As narrows a result to a concrete type or an interface. The narrowed result
succeeds only when the original did and the value's dynamic type matches:

	animals := map[string]Animal{"cat": &Cat{}, "dog": &Dog{}}

	tryget.As[HasNineLives](tryget.TryGet(animals, "cat")).OK() // true
	tryget.As[HasNineLives](tryget.TryGet(animals, "dog")).OK() // false

Narrowing chains compose: narrowing to any, then to Animal, then to *Cat behaves
like narrowing straight to *Cat.

AsValue is the comma-ok form for call sites with a single branch:

	if lives, ok := tryget.AsValue[HasNineLives](res); ok {
		lives.Lose()
	}

# Errors

Reading the value of an unsuccessful result is a programming error. Value and
Unwrap panic with a *NoValueError; Get returns it instead. Every NoValueError
matches ErrNoValue under errors.Is. All other operations never fail.

# Sources

TryGet works on plain maps, From on anything with a Get(key) (value, bool)
method and FromPair on a raw comma-ok pair. The lookup package adapts ordered
maps, concurrent maps, JSON documents, the environment and contexts.

# Thread Safety

Results are immutable values and can be shared between goroutines freely.
*/
package tryget

// Package types provides the untyped dictionary used with tryget.
package types

import (
	"fmt"

	"github.com/casualjim/tryget"
	"github.com/casualjim/tryget/pkg/jsonx"
	"github.com/goccy/go-json"
)

// Vars is a dictionary of values of any type, keyed by name.
// Lookups return untyped results that are narrowed with tryget.As.
//
// Example usage:
//
//	vars := Vars{
//	    "user_id":  "123",
//	    "retries":  3,
//	    "features": []string{"chat", "search"},
//	}
//
//	retries := tryget.As[int](vars.TryGet("retries")).OrDefault(1)
//
// Thread Safety:
// Vars is a map type and is not safe for concurrent modification.
type Vars map[string]any

// VarsOf converts a struct or map into Vars, keyed by the JSON names of its fields.
// Values take their JSON shape: numbers become float64, nested structs map[string]any.
func VarsOf(val any) (Vars, error) {
	m, err := jsonx.ToDynamicJSON(val)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %T to vars: %w", val, err)
	}
	return Vars(m), nil
}

// TryGet looks up key. The result is successful when the key is present,
// including when the stored value is nil.
func (v Vars) TryGet(key string) tryget.Dynamic {
	return tryget.TryGet(v, key)
}

// String returns a JSON string representation of the Vars.
// If marshaling fails, it returns an empty string.
func (v Vars) String() string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(jsonData)
}

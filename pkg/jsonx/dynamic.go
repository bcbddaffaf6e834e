package jsonx

import "github.com/goccy/go-json"

// ToDynamicJSON converts any Go value to a dynamic JSON object represented as a map[string]any.
// It first marshals the input value to JSON bytes and then unmarshals those bytes into a map,
// so struct fields are keyed by their json names and numbers come back as float64.
// If either the marshaling or unmarshaling process fails, an error is returned.
func ToDynamicJSON(val any) (map[string]any, error) {
	result := make(map[string]any)
	b, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Package cache holds helpers shared by the fetch-cache backends.
package cache

import "encoding/json"

// Decode converts a cached value back into its concrete type. The in-memory
// backend stores values as-is; the Redis backend returns raw JSON, so cached
// payloads must be JSON-serializable.
func Decode[T any](v any) (T, bool) {
	var zero T

	switch x := v.(type) {
	case T:
		return x, true
	case json.RawMessage:
		var out T
		if err := json.Unmarshal(x, &out); err != nil {
			return zero, false
		}
		return out, true
	case []byte:
		var out T
		if err := json.Unmarshal(x, &out); err != nil {
			return zero, false
		}
		return out, true
	default:
		return zero, false
	}
}

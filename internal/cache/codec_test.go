package cache_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modelrates/modelrates/internal/cache"
)

func TestDecode(t *testing.T) {
	t.Run("passes through the concrete type", func(t *testing.T) {
		got, ok := cache.Decode[[]string]([]string{"a", "b"})
		require.True(t, ok)
		require.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("unmarshals raw JSON", func(t *testing.T) {
		got, ok := cache.Decode[map[string]float64](json.RawMessage(`{"x":1.5}`))
		require.True(t, ok)
		require.Equal(t, map[string]float64{"x": 1.5}, got)
	})

	t.Run("unmarshals byte slices", func(t *testing.T) {
		got, ok := cache.Decode[[]string]([]byte(`["a"]`))
		require.True(t, ok)
		require.Equal(t, []string{"a"}, got)
	})

	t.Run("nil value fails cleanly", func(t *testing.T) {
		_, ok := cache.Decode[[]string](nil)
		require.False(t, ok)
	})

	t.Run("mismatched type fails cleanly", func(t *testing.T) {
		_, ok := cache.Decode[[]string](42)
		require.False(t, ok)
	})

	t.Run("malformed JSON fails cleanly", func(t *testing.T) {
		_, ok := cache.Decode[[]string](json.RawMessage(`{oops`))
		require.False(t, ok)
	})
}

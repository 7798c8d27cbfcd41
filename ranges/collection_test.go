// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ranges

import (
	"testing"

	"github.com/confrange/confrange/key"

	"github.com/stretchr/testify/require"
)

func TestSequenceOf(t *testing.T) {
	r := SequenceOf(Int(1, 100, 1))

	t.Run("completes nil to an empty sequence", func(t *testing.T) {
		v, rerr := r.Complete(nil, nil)
		require.Nil(t, rerr)
		require.Equal(t, []any{}, v)
	})

	t.Run("rejects non-sequence input", func(t *testing.T) {
		_, rerr := r.Complete(nil, "not a sequence")
		require.NotNil(t, rerr)
		require.Equal(t, r.Describe(), rerr.Range.Describe())
	})

	t.Run("validates elements in order at index-extended paths", func(t *testing.T) {
		v, rerr := r.Complete(key.Chain{key.Name("xs")}, []any{1, 2, 3})
		require.Nil(t, rerr)
		require.Equal(t, []any{int64(1), int64(2), int64(3)}, v)
	})

	t.Run("aborts at the first failing element", func(t *testing.T) {
		_, rerr := r.Complete(key.Chain{key.Name("xs")}, []any{1, 999, 888})
		require.NotNil(t, rerr)
		require.Equal(t, "xs.1", rerr.Path.Key())
		require.Equal(t, 999, rerr.Value)
	})

	t.Run("accepts typed slices", func(t *testing.T) {
		v, rerr := r.Complete(nil, []int{4, 5})
		require.Nil(t, rerr)
		require.Equal(t, []any{int64(4), int64(5)}, v)
	})
}

func TestSetOf(t *testing.T) {
	r := SetOf(String(""))

	t.Run("collapses duplicates keeping first occurrences", func(t *testing.T) {
		v, rerr := r.Complete(nil, []any{"a", "b", "a", "c", "b"})
		require.Nil(t, rerr)
		require.Equal(t, []any{"a", "b", "c"}, v)
	})

	t.Run("still aborts at the first failing element", func(t *testing.T) {
		_, rerr := r.Complete(nil, []any{"a", 2})
		require.NotNil(t, rerr)
		require.Equal(t, "1", rerr.Path.Key())
	})
}

func TestTupleOf(t *testing.T) {
	r := TupleOf(String(""), Int(1, 100, 1), Bool(false))

	t.Run("validates positionally in order", func(t *testing.T) {
		v, rerr := r.Complete(nil, []any{"host", 80, true})
		require.Nil(t, rerr)
		require.Equal(t, []any{"host", int64(80), true}, v)
	})

	t.Run("first failing position wins", func(t *testing.T) {
		_, rerr := r.Complete(nil, []any{"host", "eighty", 7})
		require.NotNil(t, rerr)
		require.Equal(t, "1", rerr.Path.Key())
		require.Equal(t, "eighty", rerr.Value)
	})

	t.Run("excess elements leave fewer pairs to zip", func(t *testing.T) {
		v, rerr := r.Complete(nil, []any{"host", 80, true, "extra"})
		require.Nil(t, rerr)
		require.Equal(t, []any{"host", int64(80), true}, v)
	})

	t.Run("rejects non-sequence input", func(t *testing.T) {
		_, rerr := r.Complete(nil, 42)
		require.NotNil(t, rerr)
	})
}

func TestMapOf(t *testing.T) {
	r := MapOf(String(""), Int(1, 100, 1))

	t.Run("completes nil to an empty map", func(t *testing.T) {
		v, rerr := r.Complete(nil, nil)
		require.Nil(t, rerr)
		require.Equal(t, map[string]any{}, v)
	})

	t.Run("an empty map stays empty", func(t *testing.T) {
		v, rerr := r.Complete(nil, map[string]any{})
		require.Nil(t, rerr)
		require.Equal(t, map[string]any{}, v)
	})

	t.Run("validates every key and value", func(t *testing.T) {
		v, rerr := r.Complete(nil, map[string]any{"a": 1, "b": 2})
		require.Nil(t, rerr)
		require.Equal(t, map[string]any{"a": int64(1), "b": int64(2)}, v)
	})

	t.Run("the first failure in sorted key order wins", func(t *testing.T) {
		_, rerr := r.Complete(key.Chain{key.Name("m")}, map[string]any{"a": 999, "b": 888})
		require.NotNil(t, rerr)
		require.Equal(t, "m.a", rerr.Path.Key())
		require.Equal(t, 999, rerr.Value)
	})

	t.Run("a failing key wins over its value", func(t *testing.T) {
		r := MapOf(OneOf(nil, "x", "y"), Int(1, 100, 1))
		_, rerr := r.Complete(nil, map[string]any{"z": 999})
		require.NotNil(t, rerr)
		require.Equal(t, "z", rerr.Value)
	})

	t.Run("rejects non-map input", func(t *testing.T) {
		_, rerr := r.Complete(nil, []any{1})
		require.NotNil(t, rerr)
	})
}

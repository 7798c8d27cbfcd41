// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"testing"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/ranges"

	"github.com/stretchr/testify/require"
)

func TestReduceScalarSettings(t *testing.T) {
	s := demoSchema()

	type leaf struct {
		path  string
		value any
	}
	collectLeaves := func(m map[string]any) []leaf {
		acc := ReduceScalarSettings(s, func(_ ranges.Range, path key.Chain, acc, v any) any {
			return append(acc.([]leaf), leaf{path: path.Key(), value: v})
		}, []leaf{}, m)
		return acc.([]leaf)
	}

	t.Run("visits settings before sections in document order, with defaults", func(t *testing.T) {
		leaves := collectLeaves(map[string]any{})
		require.Equal(t, []leaf{
			{path: "port", value: int64(8080)},
			{path: "host", value: "localhost"},
			{path: "db.host", value: ""},
			{path: "db.port", value: int64(5432)},
		}, leaves)
	})

	t.Run("completes present values before folding them", func(t *testing.T) {
		leaves := collectLeaves(map[string]any{
			"port": 9090,
			"db":   map[string]any{"host": "db.internal"},
		})
		require.Equal(t, []leaf{
			{path: "port", value: int64(9090)},
			{path: "host", value: "localhost"},
			{path: "db.host", value: "db.internal"},
			{path: "db.port", value: int64(5432)},
		}, leaves)
	})

	t.Run("folding an invalid map escalates to the fatal tier", func(t *testing.T) {
		rep := caught(func() {
			collectLeaves(map[string]any{"port": 0})
		})
		require.NotNil(t, rep)
		require.Equal(t, fatal.OpFold, rep.Op)
	})
}

func TestSchemaRange(t *testing.T) {
	s := demoSchema()
	r := SchemaRange(s)

	t.Run("describes the schema", func(t *testing.T) {
		require.Equal(t, "demo service", r.Describe())
	})

	t.Run("completion is the normalization pass", func(t *testing.T) {
		v, rerr := r.Complete(nil, map[string]any{"port": 9090})
		require.Nil(t, rerr)
		require.Equal(t, map[string]any{
			"port": int64(9090),
			"host": "localhost",
			"db": map[string]any{
				"host": "",
				"port": int64(5432),
			},
		}, v)
	})

	t.Run("nil completes to the schema's defaults", func(t *testing.T) {
		v, rerr := r.Complete(nil, nil)
		require.Nil(t, rerr)
		require.Equal(t, int64(8080), v.(map[string]any)["port"])
	})

	t.Run("rejects non-map input", func(t *testing.T) {
		_, rerr := r.Complete(key.Chain{key.Name("cfg")}, 42)
		require.NotNil(t, rerr)
		require.Equal(t, "cfg", rerr.Path.Key())
	})
}

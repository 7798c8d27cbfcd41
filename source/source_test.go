// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := Map{"a": 1}

	got, err := m.Read()
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": 1}, got)
}

func TestFromYaml(t *testing.T) {
	t.Run("reads a nested raw map", func(t *testing.T) {
		src := FromYaml(strings.NewReader(`
port: 9090
db:
  host: db.internal
`))

		m, err := src.Read()
		require.NoError(t, err)
		require.Equal(t, map[string]any{
			"port": 9090,
			"db":   map[string]any{"host": "db.internal"},
		}, m)
	})

	t.Run("invalid yaml returns an InvalidYamlError", func(t *testing.T) {
		_, err := FromYaml(strings.NewReader("{")).Read()

		var yerr InvalidYamlError
		require.ErrorAs(t, err, &yerr)
		require.NotEmpty(t, yerr.Error())
	})

	t.Run("closes the reader when it is a closer", func(t *testing.T) {
		rc := &readCloser{Reader: strings.NewReader("a: 1")}

		_, err := FromYaml(rc).Read()
		require.NoError(t, err)
		require.True(t, rc.closed)
	})

	t.Run("a close failure surfaces", func(t *testing.T) {
		closeErr := errors.New("close failed")
		rc := &readCloser{Reader: strings.NewReader("a: 1"), closeErr: closeErr}

		_, err := FromYaml(rc).Read()
		require.ErrorIs(t, err, closeErr)
	})
}

func TestFromJson(t *testing.T) {
	t.Run("reads a nested raw map", func(t *testing.T) {
		src := FromJson(strings.NewReader(`{"port": 9090, "db": {"host": "db.internal"}}`))

		m, err := src.Read()
		require.NoError(t, err)
		require.Equal(t, map[string]any{
			"port": float64(9090),
			"db":   map[string]any{"host": "db.internal"},
		}, m)
	})

	t.Run("invalid json returns an InvalidJsonError", func(t *testing.T) {
		_, err := FromJson(strings.NewReader("{")).Read()

		var jerr InvalidJsonError
		require.ErrorAs(t, err, &jerr)
		require.NotEmpty(t, jerr.Error())
	})
}

type readCloser struct {
	io.Reader
	closed   bool
	closeErr error
}

func (rc *readCloser) Close() error {
	rc.closed = true
	return rc.closeErr
}

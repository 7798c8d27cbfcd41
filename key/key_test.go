// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		name     string
		chain    Chain
		expected string
	}{
		{
			name:     "empty chain",
			chain:    Chain{},
			expected: "",
		},
		{
			name:     "single name",
			chain:    Chain{Name("db")},
			expected: "db",
		},
		{
			name:     "names and indices",
			chain:    Chain{Name("db"), Name("replicas"), Index(2), Name("host")},
			expected: "db.replicas.2.host",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.chain.Key())
		})
	}
}

func TestChain_With(t *testing.T) {
	t.Run("extends without modifying the receiver", func(t *testing.T) {
		base := Chain{Name("a")}

		left := base.With(Name("b"))
		right := base.With(Name("c"))

		require.Equal(t, "a", base.Key())
		require.Equal(t, "a.b", left.Key())
		require.Equal(t, "a.c", right.Key())
	})

	t.Run("sibling extensions never alias", func(t *testing.T) {
		base := make(Chain, 0, 8)
		base = base.With(Name("root"))

		left := base.With(Name("x"))
		_ = base.With(Name("y"))

		require.Equal(t, "root.x", left.Key())
	})
}

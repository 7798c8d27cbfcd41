// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fatal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport_Error(t *testing.T) {
	testCases := []struct {
		name     string
		report   *Report
		expected string
	}{
		{
			name:     "without details",
			report:   &Report{Op: OpMerge, Message: "expected a map"},
			expected: "merge: expected a map",
		},
		{
			name:     "with details",
			report:   &Report{Op: OpProfiles, Message: "profile is not defined", Details: []any{"prod"}},
			expected: "profiles: profile is not defined: prod",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.report.Error())
		})
	}
}

func TestRaise(t *testing.T) {
	t.Run("panics with a report and never returns", func(t *testing.T) {
		defer func() {
			rep, ok := recover().(*Report)
			require.True(t, ok)
			require.Equal(t, OpAccess, rep.Op)
			require.Equal(t, "unknown section", rep.Message)
			require.Equal(t, []any{"db.replica"}, rep.Details)
		}()

		Raise(OpAccess, "unknown section", "db.replica")
		t.Fatal("Raise returned")
	})
}

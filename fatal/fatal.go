// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fatal reports unrecoverable conditions.
//
// The conditions reported here are programmer errors, for example a
// merge over a map whose keys the schema does not declare, never
// data-validity failures. Data-validity failures are modelled as
// returned values, see the ranges package.
package fatal

import (
	"fmt"
	"strings"
)

// Op identifies the operation which raised a report.
type Op string

const (
	OpSchema   Op = "schema"
	OpConfig   Op = "configuration"
	OpMerge    Op = "merge"
	OpProfiles Op = "profiles"
	OpAccess   Op = "access"
	OpDiff     Op = "diff"
	OpFold     Op = "fold"
)

// Report describes an unrecoverable condition.
type Report struct {
	Op      Op
	Message string
	Details []any
}

// Error implements the error interface.
func (r *Report) Error() string {
	var sb strings.Builder
	sb.WriteString(string(r.Op))
	sb.WriteString(": ")
	sb.WriteString(r.Message)
	for _, d := range r.Details {
		fmt.Fprintf(&sb, ": %v", d)
	}
	return sb.String()
}

// Raise panics with a [*Report]. It never returns.
func Raise(op Op, msg string, details ...any) {
	panic(&Report{
		Op:      op,
		Message: msg,
		Details: details,
	})
}

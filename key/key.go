// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing slots in nested configuration data.
package key

import (
	"strconv"
	"strings"
)

// Keyer is a common interface all path element types must implement.
type Keyer interface {
	Key() string
}

// Name represents a single setting or section key.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Index represents a position within a sequence value.
type Index int

// Key implements the [Keyer] interface.
func (k Index) Key() string {
	return strconv.Itoa(int(k))
}

// Chain represents an ordered path of keys and indices from the
// root of a configuration down to one of its slots.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := range len(k) {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, ".")
}

// With returns a new Chain extended by the given elements. The
// receiver is never modified so sibling branches of a recursive
// walk can not alias each other's paths.
func (k Chain) With(elems ...Keyer) Chain {
	out := make(Chain, 0, len(k)+len(elems))
	out = append(out, k...)
	return append(out, elems...)
}

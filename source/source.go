// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source bridges already-serialized configuration text into
// the raw nested maps the confrange package consumes. Locating that
// text on disk, in the environment or on a command line is the
// caller's responsibility.
package source

// Source yields one raw configuration map.
type Source interface {
	Read() (map[string]any, error)
}

// Map is an ordinary map[string]any which implements the Source
// interface by returning itself.
type Map map[string]any

// Read implements the Source interface.
func (m Map) Read() (map[string]any, error) {
	return m, nil
}

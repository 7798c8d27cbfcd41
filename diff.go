// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"iter"
	"reflect"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/schema"
)

// Delta is one differing setting between two configurations: the
// setting's path qualified by its enclosing section keys, and the
// value on each side.
type Delta struct {
	Path key.Chain
	A    any
	B    any
}

// Diff lazily compares two configurations validated against the same
// schema. The walk is driven by the schema, not the maps: every
// setting key, transitively through sections in declaration order, is
// compared structurally, and each differing setting yields one
// [Delta]. Sections never yield a whole-section delta themselves. The
// sequence is empty when the configurations are identical.
//
// Comparing configurations built from different schemas is a
// programmer error and escalates through the fatal package.
func Diff(a, b *Configuration) iter.Seq[Delta] {
	if a.schema != b.schema {
		fatal.Raise(fatal.OpDiff, "configurations were validated against different schemas")
	}
	return func(yield func(Delta) bool) {
		diffMaps(a.schema, nil, a.m, b.m, yield)
	}
}

func diffMaps(s *schema.Schema, path key.Chain, ma, mb map[string]any, yield func(Delta) bool) bool {
	for _, set := range s.Settings() {
		va, vb := ma[set.Key], mb[set.Key]
		if reflect.DeepEqual(va, vb) {
			continue
		}
		if !yield(Delta{Path: path.With(key.Name(set.Key)), A: va, B: vb}) {
			return false
		}
	}
	for _, sec := range s.Sections() {
		spath := path.With(key.Name(sec.Key))
		suba, _ := sectionMap(ma[sec.Key])
		subb, _ := sectionMap(mb[sec.Key])
		if !diffMaps(sec.Schema, spath, suba, subb, yield) {
			return false
		}
	}
	return true
}

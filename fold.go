// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/ranges"
	"github.com/confrange/confrange/schema"
)

// SchemaRange composes a schema's settings and sections into a single
// [ranges.Range] over whole configuration maps. Its completion is the
// normalization pass, without profiles or inheritance from outer
// levels, and its fold visits settings before sections at each level,
// matching normalization order.
func SchemaRange(s *schema.Schema) ranges.Range {
	return schemaRange{s: s}
}

type schemaRange struct {
	s *schema.Schema
}

func (r schemaRange) Describe() string {
	return r.s.Description()
}

func (r schemaRange) Complete(path key.Chain, value any) (any, *ranges.RangeError) {
	m, ok := sectionMap(value)
	if !ok {
		return nil, &ranges.RangeError{Range: r, Path: path, Value: value}
	}
	completed, rerr := normalize(r.s, nil, m, nil, path)
	if rerr != nil {
		return nil, rerr
	}
	return completed, nil
}

func (r schemaRange) Fold(path key.Chain, fn ranges.FoldFunc, acc, value any) any {
	completed, rerr := r.Complete(path, value)
	if rerr != nil {
		fatal.Raise(fatal.OpFold, "cannot fold a value which fails completion", rerr)
	}
	m := completed.(map[string]any)
	for _, set := range r.s.Settings() {
		acc = set.Range.Fold(path.With(key.Name(set.Key)), fn, acc, m[set.Key])
	}
	for _, sec := range r.s.Sections() {
		acc = schemaRange{s: sec.Schema}.Fold(path.With(key.Name(sec.Key)), fn, acc, m[sec.Key])
	}
	return acc
}

// ReduceScalarSettings folds fn over every scalar leaf of the raw map
// in document order under the schema, settings before sections at
// each level. The map is completed internally first, so absent
// settings contribute their defaults.
func ReduceScalarSettings(s *schema.Schema, fn ranges.FoldFunc, init any, m map[string]any) any {
	return SchemaRange(s).Fold(nil, fn, init, m)
}

// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"maps"
	"sort"

	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/ranges"
	"github.com/confrange/confrange/schema"
)

// normalize turns a raw nested map into a fully-defaulted,
// inheritance-resolved map, guided by the schema. The first range
// error encountered anywhere in the recursion is returned unchanged;
// no partial result is ever produced.
//
// Inheritance flows outer to inner through inherited: a setting
// marked inherit contributes its raw value, a section marked inherit
// its fully completed sub-result, and either becomes the default for
// same-named entries at every nested level which does not override
// them. The map is cloned per level so sibling branches stay
// independent.
func normalize(s *schema.Schema, profiles []string, m map[string]any, inherited map[string]any, path key.Chain) (map[string]any, *ranges.RangeError) {
	m = ApplyProfiles(s, m, profiles)
	inherited = maps.Clone(inherited)
	if inherited == nil {
		inherited = map[string]any{}
	}
	out := make(map[string]any)

	// Settings present in the map complete first so their raw values
	// are on record before any section recursion needs them.
	for _, set := range s.Settings() {
		raw, ok := m[set.Key]
		if !ok {
			continue
		}
		v, rerr := set.Range.Complete(path.With(key.Name(set.Key)), raw)
		if rerr != nil {
			return nil, rerr
		}
		out[set.Key] = v
		if set.Inherit {
			inherited[set.Key] = raw
		}
	}

	// A key the schema does not declare at this level is data shaped
	// wrong relative to the schema, a recoverable failure.
	for _, k := range sortedKeys(m) {
		if _, ok := s.Setting(k); ok {
			continue
		}
		if _, ok := s.Section(k); ok {
			continue
		}
		return nil, &ranges.RangeError{Path: path.With(key.Name(k)), Value: m[k]}
	}

	// Absent settings fill from the inherited raw value when one is
	// on record, else from the range's own default.
	for _, set := range s.Settings() {
		if _, ok := m[set.Key]; ok {
			continue
		}
		raw := inherited[set.Key]
		v, rerr := set.Range.Complete(path.With(key.Name(set.Key)), raw)
		if rerr != nil {
			return nil, rerr
		}
		out[set.Key] = v
	}

	// Sections present in the map recurse with the current inherited
	// values and the extended path.
	for _, sec := range s.Sections() {
		raw, ok := m[sec.Key]
		if !ok {
			continue
		}
		spath := path.With(key.Name(sec.Key))
		sub, ok := sectionMap(raw)
		if !ok {
			return nil, &ranges.RangeError{Path: spath, Value: raw}
		}
		res, rerr := normalize(sec.Schema, nil, sub, inherited, spath)
		if rerr != nil {
			return nil, rerr
		}
		out[sec.Key] = res
		if sec.Inherit {
			inherited[sec.Key] = res
		}
	}

	// Absent sections fill from the inherited completed result
	// verbatim when one is on record, else from their own defaults.
	for _, sec := range s.Sections() {
		if _, ok := m[sec.Key]; ok {
			continue
		}
		if v, ok := inherited[sec.Key]; ok {
			out[sec.Key] = v
			continue
		}
		res, rerr := normalize(sec.Schema, nil, map[string]any{}, inherited, path.With(key.Name(sec.Key)))
		if rerr != nil {
			return nil, rerr
		}
		out[sec.Key] = res
	}

	return out, nil
}

func sectionMap(raw any) (map[string]any, bool) {
	if raw == nil {
		return map[string]any{}, true
	}
	sub, ok := raw.(map[string]any)
	return sub, ok
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

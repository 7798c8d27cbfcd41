// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"maps"
	"sort"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/schema"
)

// ProfilesKey is the reserved top-level key under which a raw
// configuration map carries its named profile overlays.
const ProfilesKey = "profiles"

// MergeWithoutProfiles deep-merges two raw configuration maps guided
// by the schema, b taking precedence. For a setting key, b's value
// wins whenever b contains the key, an explicit nil included. For a
// section key the merge recurses into the section's schema, treating
// a missing side as empty. A key naming neither a setting nor a
// section is a programmer error and escalates through the fatal
// package; neither map is validated against any range here.
func MergeWithoutProfiles(s *schema.Schema, path key.Chain, a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for _, k := range unionKeys(a, b) {
		kpath := path.With(key.Name(k))
		if _, ok := s.Setting(k); ok {
			if v, ok := b[k]; ok {
				out[k] = v
			} else {
				out[k] = a[k]
			}
			continue
		}
		sec, ok := s.Section(k)
		if !ok {
			fatal.Raise(fatal.OpMerge, "key names neither a setting nor a section", kpath.Key())
		}
		out[k] = MergeWithoutProfiles(sec.Schema, kpath, subMap(a, k, kpath), subMap(b, k, kpath))
	}
	return out
}

// MergeMaps folds MergeWithoutProfiles over the given maps left to
// right, except that the reserved profiles key is merged by plain
// per-profile overwrite. Profile definitions are not schema-validated
// at merge time.
func MergeMaps(s *schema.Schema, ms ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, m := range ms {
		out = mergeTwo(s, out, m)
	}
	return out
}

func mergeTwo(s *schema.Schema, a, b map[string]any) map[string]any {
	profs := profilesOf(a)
	maps.Copy(profs, profilesOf(b))

	out := MergeWithoutProfiles(s, nil, sansProfiles(a), sansProfiles(b))
	if len(profs) > 0 {
		out[ProfilesKey] = profs
	}
	return out
}

// ApplyProfiles overlays the named profiles of a raw configuration
// map onto its base, left to right, so later names override earlier
// ones and the base. The profiles key itself is stripped from the
// result. Requesting a profile the map does not define is a
// programmer error and escalates through the fatal package.
func ApplyProfiles(s *schema.Schema, m map[string]any, names []string) map[string]any {
	base := sansProfiles(m)
	if len(names) == 0 {
		return base
	}
	profs := profilesOf(m)
	for _, name := range names {
		p, ok := profs[name]
		if !ok {
			fatal.Raise(fatal.OpProfiles, "profile is not defined", name)
		}
		pm, ok := p.(map[string]any)
		if !ok {
			fatal.Raise(fatal.OpProfiles, "profile is not a map", name, p)
		}
		base = MergeWithoutProfiles(s, nil, base, pm)
	}
	return base
}

// profilesOf returns a copy of m's profile definitions, empty when m
// carries none.
func profilesOf(m map[string]any) map[string]any {
	v, ok := m[ProfilesKey]
	if !ok || v == nil {
		return map[string]any{}
	}
	profs, ok := v.(map[string]any)
	if !ok {
		fatal.Raise(fatal.OpMerge, "profiles must be a map of profile name to map", v)
	}
	return maps.Clone(profs)
}

func sansProfiles(m map[string]any) map[string]any {
	out := maps.Clone(m)
	if out == nil {
		return map[string]any{}
	}
	delete(out, ProfilesKey)
	return out
}

func subMap(m map[string]any, k string, path key.Chain) map[string]any {
	v, ok := m[k]
	if !ok || v == nil {
		return map[string]any{}
	}
	sub, ok := v.(map[string]any)
	if !ok {
		fatal.Raise(fatal.OpMerge, "expected a map", path.Key(), v)
	}
	return sub
}

func unionKeys(ms ...map[string]any) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, m := range ms {
		for k := range m {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

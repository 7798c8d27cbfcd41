// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ranges

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/confrange/confrange/key"
)

// SequenceOf returns a Range validating every element of a sequence
// against elem, with each element's path extended by its index. Nil
// completes to an empty sequence. Validation aborts at the first
// failing element; no partial sequence is ever produced.
func SequenceOf(elem Range) Range {
	return sequenceOfRange{elem: elem}
}

type sequenceOfRange struct {
	elem Range
}

func (s sequenceOfRange) Describe() string {
	return fmt.Sprintf("a sequence of %s", s.elem.Describe())
}

func (s sequenceOfRange) Complete(path key.Chain, value any) (any, *RangeError) {
	if value == nil {
		return []any{}, nil
	}
	seq, ok := asSequence(value)
	if !ok {
		return nil, &RangeError{Range: s, Path: path, Value: value}
	}
	out := make([]any, len(seq))
	for i, el := range seq {
		v, rerr := s.elem.Complete(path.With(key.Index(i)), el)
		if rerr != nil {
			return nil, rerr
		}
		out[i] = v
	}
	return out, nil
}

func (s sequenceOfRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	seq := mustComplete(s, path, value).([]any)
	for i, el := range seq {
		acc = s.elem.Fold(path.With(key.Index(i)), fn, acc, el)
	}
	return acc
}

// SetOf returns a Range validating a sequence like [SequenceOf] and
// then collapsing structural duplicates, keeping first occurrences in
// order. Duplicates are not themselves a validation failure.
func SetOf(elem Range) Range {
	return setOfRange{seq: SequenceOf(elem), elem: elem}
}

type setOfRange struct {
	seq  Range
	elem Range
}

func (s setOfRange) Describe() string {
	return fmt.Sprintf("a set of %s", s.elem.Describe())
}

func (s setOfRange) Complete(path key.Chain, value any) (any, *RangeError) {
	v, rerr := s.seq.Complete(path, value)
	if rerr != nil {
		return nil, rerr
	}
	return dedupe(v.([]any)), nil
}

func (s setOfRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	set := mustComplete(s, path, value).([]any)
	for i, el := range set {
		acc = s.elem.Fold(path.With(key.Index(i)), fn, acc, el)
	}
	return acc
}

func dedupe(seq []any) []any {
	out := make([]any, 0, len(seq))
	for _, el := range seq {
		seen := false
		for _, have := range out {
			if reflect.DeepEqual(have, el) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, el)
		}
	}
	return out
}

// TupleOf returns a Range validating a sequence positionally against
// the given element ranges. Pairs are zipped up to the shorter of the
// two lengths; the first failing position wins.
func TupleOf(elems ...Range) Range {
	return tupleOfRange{elems: elems}
}

type tupleOfRange struct {
	elems []Range
}

func (t tupleOfRange) Describe() string {
	ss := make([]string, len(t.elems))
	for i, r := range t.elems {
		ss[i] = r.Describe()
	}
	return fmt.Sprintf("a tuple of (%s)", strings.Join(ss, ", "))
}

func (t tupleOfRange) Complete(path key.Chain, value any) (any, *RangeError) {
	var seq []any
	if value != nil {
		var ok bool
		seq, ok = asSequence(value)
		if !ok {
			return nil, &RangeError{Range: t, Path: path, Value: value}
		}
	}
	n := min(len(seq), len(t.elems))
	out := make([]any, n)
	for i := range n {
		v, rerr := t.elems[i].Complete(path.With(key.Index(i)), seq[i])
		if rerr != nil {
			return nil, rerr
		}
		out[i] = v
	}
	return out, nil
}

func (t tupleOfRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	seq := mustComplete(t, path, value).([]any)
	for i, el := range seq {
		acc = t.elems[i].Fold(path.With(key.Index(i)), fn, acc, el)
	}
	return acc
}

// MapOf returns a Range validating every key of a map against keys
// and every value against values, key and value sharing one path
// slot. Nil completes to an empty map. Entries are visited in sorted
// key order so the first failure is deterministic.
func MapOf(keys, values Range) Range {
	return mapOfRange{keys: keys, values: values}
}

type mapOfRange struct {
	keys   Range
	values Range
}

func (m mapOfRange) Describe() string {
	return fmt.Sprintf("a map of %s to %s", m.keys.Describe(), m.values.Describe())
}

func (m mapOfRange) Complete(path key.Chain, value any) (any, *RangeError) {
	if value == nil {
		return map[string]any{}, nil
	}
	entries, ok := asEntries(value)
	if !ok {
		return nil, &RangeError{Range: m, Path: path, Value: value}
	}
	out := make(map[any]any, len(entries))
	stringKeys := true
	for _, e := range entries {
		slot := path.With(key.Name(fmt.Sprint(e.k)))
		ck, rerr := m.keys.Complete(slot, e.k)
		if rerr != nil {
			return nil, rerr
		}
		cv, rerr := m.values.Complete(slot, e.v)
		if rerr != nil {
			return nil, rerr
		}
		if _, ok := ck.(string); !ok {
			stringKeys = false
		}
		out[ck] = cv
	}
	if !stringKeys {
		return out, nil
	}
	strOut := make(map[string]any, len(out))
	for k, v := range out {
		strOut[k.(string)] = v
	}
	return strOut, nil
}

func (m mapOfRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	completed := mustComplete(m, path, value)
	entries, _ := asEntries(completed)
	for _, e := range entries {
		slot := path.With(key.Name(fmt.Sprint(e.k)))
		acc = m.keys.Fold(slot, fn, acc, e.k)
		acc = m.values.Fold(slot, fn, acc, e.v)
	}
	return acc
}

type entry struct {
	k any
	v any
}

// asEntries views a map value as a slice of entries sorted by the
// string rendering of their keys.
func asEntries(value any) ([]entry, bool) {
	var entries []entry
	switch x := value.(type) {
	case map[string]any:
		entries = make([]entry, 0, len(x))
		for k, v := range x {
			entries = append(entries, entry{k: k, v: v})
		}
	case map[any]any:
		entries = make([]entry, 0, len(x))
		for k, v := range x {
			entries = append(entries, entry{k: k, v: v})
		}
	default:
		return nil, false
	}
	sort.Slice(entries, func(i, j int) bool {
		return fmt.Sprint(entries[i].k) < fmt.Sprint(entries[j].k)
	})
	return entries, true
}

// asSequence views a value as []any. Strings and byte slices are not
// sequences for validation purposes.
func asSequence(value any) ([]any, bool) {
	switch x := value.(type) {
	case []any:
		return x, true
	case string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

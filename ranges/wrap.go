// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ranges

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/confrange/confrange/key"
)

// Optional returns a Range completing nil to nil without consulting
// r, and delegating every other value to r.
func Optional(r Range) Range {
	return optionalRange{r: r}
}

type optionalRange struct {
	r Range
}

func (o optionalRange) Describe() string {
	return fmt.Sprintf("optionally %s", o.r.Describe())
}

func (o optionalRange) Complete(path key.Chain, value any) (any, *RangeError) {
	if value == nil {
		return nil, nil
	}
	return o.r.Complete(path, value)
}

func (o optionalRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	if value == nil {
		return fn(o, path, acc, nil)
	}
	return o.r.Fold(path, fn, acc, value)
}

// Default returns a Range substituting def for nil before delegating
// to r. The default itself must therefore satisfy r.
func Default(r Range, def any) Range {
	return defaultRange{r: r, def: def}
}

type defaultRange struct {
	r   Range
	def any
}

func (d defaultRange) Describe() string {
	return fmt.Sprintf("%s (default %v)", d.r.Describe(), d.def)
}

func (d defaultRange) Complete(path key.Chain, value any) (any, *RangeError) {
	if value == nil {
		value = d.def
	}
	return d.r.Complete(path, value)
}

func (d defaultRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	if value == nil {
		value = d.def
	}
	return d.r.Fold(path, fn, acc, value)
}

// OneOf returns a Range accepting exactly the given values, compared
// structurally, with nil completing to def.
func OneOf(def any, values ...any) Range {
	return OneOfEqual(fmt.Sprintf("one of %v", values), reflect.DeepEqual, def, values...)
}

// OneOfEqual is [OneOf] with a caller-supplied equality relation.
func OneOfEqual(desc string, eq func(a, b any) bool, def any, values ...any) Range {
	var r Range
	r = Func(desc, func(path key.Chain, value any) (any, *RangeError) {
		if value == nil {
			return def, nil
		}
		for _, want := range values {
			if eq(want, value) {
				return value, nil
			}
		}
		return nil, &RangeError{Range: r, Path: path, Value: value}
	})
	return r
}

// AnyOf returns a Range trying each alternative's completion left to
// right and keeping the first success. Order is significant: an
// earlier alternative always wins over a later one, regardless of
// which would fit the value "better".
func AnyOf(alternatives ...Range) Range {
	return anyOfRange{alternatives: alternatives}
}

type anyOfRange struct {
	alternatives []Range
}

func (a anyOfRange) Describe() string {
	ss := make([]string, len(a.alternatives))
	for i, r := range a.alternatives {
		ss[i] = r.Describe()
	}
	return "any of: " + strings.Join(ss, "; ")
}

func (a anyOfRange) Complete(path key.Chain, value any) (any, *RangeError) {
	for _, r := range a.alternatives {
		v, rerr := r.Complete(path, value)
		if rerr == nil {
			return v, nil
		}
	}
	return nil, &RangeError{Range: a, Path: path, Value: value}
}

func (a anyOfRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	for _, r := range a.alternatives {
		if _, rerr := r.Complete(path, value); rerr == nil {
			return r.Fold(path, fn, acc, value)
		}
	}
	mustComplete(a, path, value)
	return acc
}

// Mapped returns a Range post-processing r's completed values with f.
// Completion failures pass through untouched. Folding decomposes the
// value as r does, before f is applied.
func Mapped(desc string, r Range, f func(any) any) Range {
	return mappedRange{desc: desc, r: r, f: f}
}

type mappedRange struct {
	desc string
	r    Range
	f    func(any) any
}

func (m mappedRange) Describe() string {
	return m.desc
}

func (m mappedRange) Complete(path key.Chain, value any) (any, *RangeError) {
	v, rerr := m.r.Complete(path, value)
	if rerr != nil {
		return nil, rerr
	}
	return m.f(v), nil
}

func (m mappedRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	return m.r.Fold(path, fn, acc, value)
}

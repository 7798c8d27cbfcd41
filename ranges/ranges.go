// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ranges provides a combinator algebra for describing the
// admissible values of configuration settings.
//
// A [Range] pairs a completer, which validates a raw value and fills
// in defaults, with a folder, which walks the scalar leaves of a
// value. Ranges are immutable and compose freely: combinators such as
// [Optional], [SequenceOf] and [MapOf] derive new Ranges from
// existing ones.
//
// Validation failures are ordinary values of type [RangeError], never
// panics. The first failure encountered anywhere inside a composite
// range short-circuits completion; errors are never aggregated.
package ranges

import (
	"fmt"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
)

// Range describes the admissible values of one configuration slot.
//
// Complete validates a raw value at the given path and returns its
// completed form, with nil typically replaced by a default. It must
// never panic on well-typed input; every recoverable failure is
// returned as a [*RangeError].
//
// Fold walks every scalar leaf of a value left to right, threading an
// accumulator through fn. Fold completes the value internally, so it
// may be handed either raw or already-completed input. Handing Fold a
// value its range rejects is a programmer error and escalates through
// the fatal package.
type Range interface {
	Describe() string
	Complete(path key.Chain, value any) (any, *RangeError)
	Fold(path key.Chain, fn FoldFunc, acc, value any) any
}

// FoldFunc is applied to every scalar leaf encountered during a fold.
type FoldFunc func(r Range, path key.Chain, acc, value any) any

// RangeError reports a value rejected during completion. It is a
// plain data value returned, never thrown, by [Range.Complete].
//
// Range is the range which ultimately rejected the value; it is nil
// when the value was rejected by the schema itself, for example a map
// key no setting or section declares.
type RangeError struct {
	Range Range
	Path  key.Chain
	Value any
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	desc := "any declared setting or section"
	if e.Range != nil {
		desc = e.Range.Describe()
	}
	return fmt.Sprintf("value %v at %q does not satisfy %s", e.Value, e.Path.Key(), desc)
}

// CompleteFunc validates and completes a single raw value.
type CompleteFunc func(path key.Chain, value any) (any, *RangeError)

// Func returns a scalar Range built from a single completer. Its fold
// completes the value and then applies the fold function exactly once
// to the completed scalar.
func Func(desc string, complete CompleteFunc) Range {
	return funcRange{desc: desc, complete: complete}
}

type funcRange struct {
	desc     string
	complete CompleteFunc
}

func (r funcRange) Describe() string {
	return r.desc
}

func (r funcRange) Complete(path key.Chain, value any) (any, *RangeError) {
	return r.complete(path, value)
}

func (r funcRange) Fold(path key.Chain, fn FoldFunc, acc, value any) any {
	v := mustComplete(r, path, value)
	return fn(r, path, acc, v)
}

// mustComplete completes a value inside a fold. Completion failing
// here indicates the caller folded over invalid data, which is an
// algorithm bug rather than a data error.
func mustComplete(r Range, path key.Chain, value any) any {
	v, rerr := r.Complete(path, value)
	if rerr != nil {
		fatal.Raise(fatal.OpFold, "cannot fold a value which fails completion", rerr)
	}
	return v
}

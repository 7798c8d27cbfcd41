// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema organizes ranges into a named tree of settings and
// sections describing the full shape of a configuration.
package schema

import (
	"slices"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/ranges"
)

// Element is either a [Setting] or a [Section].
type Element interface {
	element()
}

// Setting is a leaf schema node: one named configuration key whose
// admissible values are governed by a range.
//
// A Setting marked Inherit makes its raw value at an outer level the
// default for same-named settings at every nested level which does
// not explicitly override it.
type Setting struct {
	Key         string
	Description string
	Range       ranges.Range
	Inherit     bool
}

func (Setting) element() {}

// Section is an internal schema node grouping nested settings and
// sections under one key. Its Schema field is itself a full Schema,
// so sections nest to arbitrary depth.
type Section struct {
	Key     string
	Schema  *Schema
	Inherit bool
}

func (Section) element() {}

// Schema describes the admissible shape of one level of nested
// configuration data. Schemas are immutable once constructed and safe
// for unsynchronized concurrent use.
type Schema struct {
	description   string
	settings      []Setting
	settingsByKey map[string]Setting
	sections      []Section
	sectionsByKey map[string]Section
}

// New constructs a Schema from the given settings and sections,
// preserving declaration order. A key declared twice, whether by two
// elements of the same kind or one of each, is a programmer error and
// escalates through the fatal package.
func New(description string, elems ...Element) *Schema {
	s := &Schema{
		description:   description,
		settingsByKey: make(map[string]Setting),
		sectionsByKey: make(map[string]Section),
	}
	for _, el := range elems {
		switch x := el.(type) {
		case Setting:
			s.check(x.Key)
			s.settings = append(s.settings, x)
			s.settingsByKey[x.Key] = x
		case Section:
			s.check(x.Key)
			s.sections = append(s.sections, x)
			s.sectionsByKey[x.Key] = x
		}
	}
	return s
}

func (s *Schema) check(key string) {
	if _, ok := s.settingsByKey[key]; ok {
		fatal.Raise(fatal.OpSchema, "duplicate key", key)
	}
	if _, ok := s.sectionsByKey[key]; ok {
		fatal.Raise(fatal.OpSchema, "duplicate key", key)
	}
}

// Description returns the human-readable description of the schema.
func (s *Schema) Description() string {
	return s.description
}

// Settings returns the declared settings in declaration order.
func (s *Schema) Settings() []Setting {
	return slices.Clone(s.settings)
}

// Sections returns the declared sections in declaration order.
func (s *Schema) Sections() []Section {
	return slices.Clone(s.sections)
}

// Setting looks up a declared setting by key.
func (s *Schema) Setting(key string) (Setting, bool) {
	set, ok := s.settingsByKey[key]
	return set, ok
}

// Section looks up a declared section by key.
func (s *Schema) Section(key string) (Section, bool) {
	sec, ok := s.sectionsByKey[key]
	return sec, ok
}

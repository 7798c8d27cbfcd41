// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confrange

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/confrange/confrange/fatal"
	"github.com/confrange/confrange/key"
	"github.com/confrange/confrange/ranges"
	"github.com/confrange/confrange/schema"
	"github.com/confrange/confrange/source"
)

// Configuration is a fully-normalized, validated configuration. It is
// created only by successful normalization, owns its map exclusively
// and is never mutated afterwards, so it is safe for unsynchronized
// concurrent reads.
type Configuration struct {
	schema *schema.Schema
	m      map[string]any
}

// Option configures how a raw map is turned into a Configuration.
type Option func(*options)

type options struct {
	profiles []string
	log      *slog.Logger
}

// WithProfiles selects named profiles to overlay onto the base map
// before validation. Later names override earlier ones.
func WithProfiles(names ...string) Option {
	return func(o *options) {
		o.profiles = append(o.profiles, names...)
	}
}

// WithLogger sets a logger for debug-level notes about composition.
// By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New validates m against the schema, applying any requested
// profiles, resolving inheritance and filling every absent setting
// and section with its default. The returned error, if any, wraps the
// [*ranges.RangeError] which rejected the data and names the
// rejecting range, the path and the offending value.
//
// Fatal conditions, such as a requested profile the map does not
// define, escalate through the fatal package instead of being
// returned.
func New(s *schema.Schema, m map[string]any, opts ...Option) (*Configuration, error) {
	o := &options{
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	if m == nil {
		m = map[string]any{}
	}
	if len(o.profiles) > 0 {
		o.log.Debug("applying profiles", slog.Any("profiles", o.profiles))
	}

	normalized, rerr := normalize(s, o.profiles, m, nil, nil)
	if rerr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", rerr)
	}
	o.log.Debug("configuration normalized", slog.String("schema", s.Description()))

	return &Configuration{schema: s, m: normalized}, nil
}

// Must is like [New] but escalates a validation failure through the
// fatal package, carrying the rejected path, the offending value and
// the rejecting range's description.
func Must(s *schema.Schema, m map[string]any, opts ...Option) *Configuration {
	c, err := New(s, m, opts...)
	if err == nil {
		return c
	}

	var rerr *ranges.RangeError
	if errors.As(err, &rerr) {
		desc := "any declared setting or section"
		if rerr.Range != nil {
			desc = rerr.Range.Describe()
		}
		fatal.Raise(fatal.OpConfig, "invalid configuration", rerr.Path.Key(), rerr.Value, desc)
	}
	fatal.Raise(fatal.OpConfig, "invalid configuration", err)
	return nil
}

// FromSources reads every source and merges the resulting raw maps
// left to right under the schema, later sources taking precedence.
// The merged map is still raw; hand it to [New] to validate it.
func FromSources(s *schema.Schema, srcs ...source.Source) (map[string]any, error) {
	ms := make([]map[string]any, len(srcs))
	for i, src := range srcs {
		m, err := src.Read()
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}
	return MergeMaps(s, ms...), nil
}

// Schema returns the schema the configuration was validated against.
func (c *Configuration) Schema() *schema.Schema {
	return c.schema
}

// Map returns a deep copy of the fully-normalized map.
func (c *Configuration) Map() map[string]any {
	return deepCopyMap(c.m)
}

// Section walks the configuration down the given section keys and
// returns a deep copy of that section's map. An unknown key is a
// programmer error against a schema the caller controls and escalates
// through the fatal package.
func (c *Configuration) Section(sections ...string) map[string]any {
	return deepCopyMap(c.section(sections))
}

// Get returns the value of a setting, optionally nested under the
// given section keys. Like [Configuration.Section], an unknown path
// escalates through the fatal package.
func (c *Configuration) Get(setting string, sections ...string) any {
	m := c.section(sections)
	v, ok := m[setting]
	if !ok {
		fatal.Raise(fatal.OpAccess, "unknown setting", key.Chain(nil).With(namesOf(sections)...).With(key.Name(setting)).Key())
	}
	return deepCopyValue(v)
}

func (c *Configuration) section(sections []string) map[string]any {
	m := c.m
	var path key.Chain
	for _, name := range sections {
		path = path.With(key.Name(name))
		v, ok := m[name]
		if !ok {
			fatal.Raise(fatal.OpAccess, "unknown section", path.Key())
		}
		sub, ok := v.(map[string]any)
		if !ok {
			fatal.Raise(fatal.OpAccess, "key names a setting, not a section", path.Key())
		}
		m = sub
	}
	return m
}

func namesOf(ss []string) []key.Keyer {
	ks := make([]key.Keyer, len(ss))
	for i, s := range ss {
		ks[i] = key.Name(s)
	}
	return ks
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case map[any]any:
		out := make(map[any]any, len(x))
		for k, el := range x {
			out[k] = deepCopyValue(el)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = deepCopyValue(el)
		}
		return out
	default:
		return v
	}
}

// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confrange validates, composes and diffs nested
// configuration data against a schema.
//
// The package is built around three core abstractions:
//
//   - ranges.Range: a validator and folder describing the admissible
//     values of one configuration slot
//   - schema.Schema: a named tree of settings (leaves) and sections
//     (subtrees) built from ranges
//   - Configuration: the immutable, fully-defaulted result of
//     validating a raw map against a schema
//
// # Composition
//
// Raw maps compose before validation: [MergeMaps] deep-merges maps
// under schema guidance and [ApplyProfiles] overlays named profile
// maps onto a base. [New] then runs the normalization pass, which
// validates every present value, fills every absent setting and
// section with its default, and threads inherited values from outer
// sections into nested ones.
//
// # Basic Usage
//
// Declare a schema once, statically:
//
//	demo := schema.New("demo service",
//		schema.Setting{Key: "port", Description: "listen port", Range: ranges.Int(1, 65535, 8080)},
//		schema.Section{Key: "db", Schema: schema.New("database",
//			schema.Setting{Key: "host", Description: "database host", Range: ranges.String("")},
//		)},
//	)
//
// Validate raw data against it:
//
//	c, err := confrange.New(demo, map[string]any{"port": 9090})
//	if err != nil {
//		log.Fatal(err)
//	}
//	port := c.Get("port")       // int64(9090)
//	host := c.Get("host", "db") // ""
//
// Validation failures are returned as errors naming the rejecting
// range, the path and the offending value. Programmer errors, such as
// accessing a path the schema does not declare, escalate through the
// fatal package instead.
//
// All values are immutable once constructed, so schemas, ranges and
// configurations are safe for unsynchronized concurrent reads.
package confrange

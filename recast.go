// Copyright 2026 Recast ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package recast

import (
	"github.com/recast-ml/recast/internal/recast"
)

// Policy converts leaf storage from one representation to another. Rewrite
// hands every leaf it reaches to the policy and rebuilds the wrappers above
// the result.
type Policy = recast.Policy

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc = recast.PolicyFunc

// Key parameterizes static membership in the wrapper family: element type,
// rank, and the leaf storage types checked under rank-changing (Src) and
// shape-mirroring (Dst) wrappers.
type Key = recast.Key

// Desc is the type-level structure of a wrapped value. Build one with DescOf
// or write it as a literal for dispatch without a value in hand.
type Desc = recast.Desc

// Identity converts nothing: every leaf maps to itself.
var Identity = recast.Identity

// Rewrite rebuilds v around storage converted by p. Views from the catalog
// keep their kind, shape, and parameters; everything else is a leaf and goes
// to the policy directly. The first policy failure aborts and is returned
// unchanged.
func Rewrite(p Policy, v any) (any, error) {
	return recast.Rewrite(p, v)
}

// DescOf derives the descriptor of v.
func DescOf(v any) Desc {
	return recast.DescOf(v)
}

// Matches reports whether d belongs to the wrapper family described by k.
// It never touches values and cannot fail.
func Matches(k Key, d Desc) bool {
	return recast.Matches(k, d)
}

// Package recast rewrites wrapped storage: given a view over some leaf
// storage and a conversion policy, it rebuilds the same view structure around
// the converted leaf. It also provides static matching and accessor derivation
// over view descriptors, so callers can dispatch on wrapper structure without
// materializing values.
package recast

// Policy converts leaf storage from one backend representation to another.
// Implementations must be total (return or fail, never hang) and idempotent
// at their fixed point: converting an already-converted leaf returns an equal
// value. Policies never see views, only leaves.
type Policy interface {
	Convert(leaf any) (any, error)
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(leaf any) (any, error)

// Convert implements Policy.
func (f PolicyFunc) Convert(leaf any) (any, error) {
	return f(leaf)
}

// Identity returns every leaf unchanged.
var Identity Policy = PolicyFunc(func(leaf any) (any, error) {
	return leaf, nil
})

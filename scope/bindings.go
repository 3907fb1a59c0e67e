// Package scope builds the per-component ComponentBindings: the
// transitive module/subcomponent closure, the canonicalized provider
// map, and the immutable parent-chained scope used by the dependency
// checker and cycle detector.
package scope

import "github.com/dilink/dilink/canon"

// ComponentBindings is an immutable, per-component scope: a mapping
// from TypeKey to the ordered list of providers bound to it, plus an
// optional parent. Lookup walks self then ancestors. A ComponentBindings
// is built once by Resolve and never mutated afterward.
type ComponentBindings struct {
	// ComponentName is the owning component's linked type name, used
	// for diagnostics and debug output.
	ComponentName string

	// Local holds only the providers that originate in this component
	// (i.e. were concatenated into its own provider map during
	// Resolve) — not providers merely visible via an ancestor.
	Local map[canon.TypeKey][]canon.CanonicalProvider

	// Parent is the ancestor scope, or nil for a root component.
	Parent *ComponentBindings
}

// Lookup walks self then ancestors, returning the first scope in the
// chain that binds k and the providers it binds there.
func (b *ComponentBindings) Lookup(k canon.TypeKey) ([]canon.CanonicalProvider, bool) {
	for s := b; s != nil; s = s.Parent {
		if providers, ok := s.Local[k]; ok {
			return providers, true
		}
	}
	return nil, false
}

// Satisfied reports whether k is bound anywhere in the scope chain.
func (b *ComponentBindings) Satisfied(k canon.TypeKey) bool {
	_, ok := b.Lookup(k)
	return ok
}

// DefinedLocally reports whether k is bound directly in this component
// (not merely inherited from an ancestor).
func (b *ComponentBindings) DefinedLocally(k canon.TypeKey) bool {
	_, ok := b.Local[k]
	return ok
}

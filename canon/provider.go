package canon

import "github.com/dilink/dilink/rawiface"

// Origin is the debug origin of a canonical provider: the source
// module/component name and a human-readable label, carried through
// purely for diagnostic messages.
type Origin struct {
	// Component or module type name the provider was declared on.
	Owner string
	// Label is a human-readable description, e.g. "NewAuthN" or the
	// front-end's raw debugOrigin string verbatim.
	Label string
}

// CanonicalProvider is a binding normalized into the uniform TypeKey
// space. Target is always the bare canonical key a dependent would
// write to reference this binding: lazy and weak wrapping is recorded
// as a flag alongside Target, never folded into the key string, so a
// plain dependency on the wrapped type still resolves to this
// provider. Only a collection contribution's Target differs from the
// bare type, since a collection binding is deliberately a distinct
// aggregate identity shared by every contributor.
type CanonicalProvider struct {
	Target       TypeKey
	Dependencies []TypeKey

	IsCollectionProvider bool
	IsWeak               bool
	// IsLazy marks a provider declared as a lazy indirection
	// (RawProvider.Kind == LazyIndirection). Unlike IsWeak it has no
	// effect on cycle detection: a lazy edge still participates in a
	// cycle, it only defers instantiation.
	IsLazy bool
	// IsMapEntry distinguishes a map-shaped collection contribution
	// (RawProvider.Kind == MapEntry) from a plain element-of
	// contribution. Both share the same Target collection-aggregate
	// key (see Canonicalize); this flag exists purely so a downstream
	// consumer can tell the two apart without losing the Kind.
	IsMapEntry bool

	Origin Origin
}

// Canonicalize normalizes a single raw provider declaration into a
// CanonicalProvider, applying the wrapper rules in order (first match
// wins):
//
//  1. LazyIndirection: Target is the bare key, IsLazy is set.
//  2. Weak: Target is the bare key, IsWeak is set.
//  3. CollectionElement / MapEntry: Target becomes the "C:"-marked
//     collection-aggregate key, distinct from the bare type.
//  4. Standard: identity mapping.
//
// Lazy and weak wrapping never changes Target, so a dependency that
// simply names the bare type still links to a weak or lazy provider of
// it; the wrapping is carried purely as metadata (the cycle detector
// reads IsWeak; IsLazy has no effect on it). Collection wrapping does
// change Target, since a collection
// binding is a distinct aggregate a dependent must ask for explicitly.
//
// Dependencies carry no per-edge Kind of their own: each raw
// dependency TypeSpec is wrapped into a TypeKey unchanged.
func Canonicalize(owner string, raw rawiface.RawProvider) CanonicalProvider {
	p := CanonicalProvider{
		Origin: Origin{Owner: owner, Label: raw.DebugOrigin},
	}

	switch raw.Kind {
	case rawiface.LazyIndirection:
		p.Target = NewTypeKey(string(raw.Type))
		p.IsLazy = true
	case rawiface.Weak:
		p.Target = NewTypeKey(string(raw.Type))
		p.IsWeak = true
	case rawiface.CollectionElement:
		p.Target = Collection(string(raw.Type))
		p.IsCollectionProvider = true
	case rawiface.MapEntry:
		p.Target = Collection(string(raw.Type))
		p.IsCollectionProvider = true
		p.IsMapEntry = true
	default:
		p.Target = NewTypeKey(string(raw.Type))
	}

	p.Dependencies = make([]TypeKey, len(raw.Dependencies))
	for i, d := range raw.Dependencies {
		p.Dependencies[i] = NewTypeKey(string(d))
	}

	return p
}

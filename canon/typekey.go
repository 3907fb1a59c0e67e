// Package canon normalizes raw provider declarations into canonical
// providers keyed by TypeKey, unwrapping lazy, weak, and collection
// wrappers into a uniform key space.
package canon

import "strings"

// TypeKey is an opaque, value-equal identifier for a bound type.
// Equality and hashing are by canonical string; TypeKey is safe to use
// as a map key directly.
//
// The canonical string is the wrapped type's name prefixed by zero or
// one marker: "W:" for weak, "P:" for lazy-indirection, "C:" for a
// collection aggregate. Unwrapping is strictly one level — a TypeKey
// never carries more than one marker, matching canon.Canonicalize's
// "first match wins" rule ordering.
type TypeKey string

const (
	weakPrefix       = "W:"
	lazyPrefix       = "P:"
	collectionPrefix = "C:"
)

// NewTypeKey wraps a bare canonical type name with no marker.
func NewTypeKey(name string) TypeKey { return TypeKey(name) }

// IsWeak reports whether k is a weak dependency edge: it exists at
// resolution time but is excluded from cycle detection.
func (k TypeKey) IsWeak() bool { return strings.HasPrefix(string(k), weakPrefix) }

// IsProvider reports whether k is a lazy-indirection wrapper.
func (k TypeKey) IsProvider() bool { return strings.HasPrefix(string(k), lazyPrefix) }

// IsCollection reports whether k names a collection aggregate.
func (k TypeKey) IsCollection() bool { return strings.HasPrefix(string(k), collectionPrefix) }

// Unwrapped returns the canonical name with its single marker, if any,
// stripped.
func (k TypeKey) Unwrapped() string {
	s := string(k)
	for _, p := range []string{weakPrefix, lazyPrefix, collectionPrefix} {
		if strings.HasPrefix(s, p) {
			return s[len(p):]
		}
	}
	return s
}

// String returns the canonical string form, suitable for diagnostics
// and test fixtures.
func (k TypeKey) String() string { return string(k) }

// Weak returns the weak-wrapped form of a bare canonical name.
func Weak(name string) TypeKey { return TypeKey(weakPrefix + name) }

// Lazy returns the lazy-indirection-wrapped form of a bare canonical name.
func Lazy(name string) TypeKey { return TypeKey(lazyPrefix + name) }

// Collection returns the collection-aggregate form of a bare canonical name.
func Collection(name string) TypeKey { return TypeKey(collectionPrefix + name) }

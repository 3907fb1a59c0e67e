// Package rawiface holds the passive data model emitted by the front-end:
// unlinked modules, components, and providers exactly as extracted from
// source, before any merging or canonicalization happens.
package rawiface

import (
	"encoding/json"
	"fmt"
)

// TypeSpec is an opaque canonical-name string for a bound type, supplied
// by the front-end. The front-end is responsible for normalizing
// generics and namespaces into this form; dilink never inspects a
// TypeSpec's structure beyond the wrapper-prefix convention documented
// on canon.TypeKey.
type TypeSpec string

// Kind classifies how a RawProvider's target type relates to the value
// it produces.
type Kind int

const (
	// Standard is an ordinary binding: the provider's type is exactly
	// what it produces.
	Standard Kind = iota
	// CollectionElement contributes one element to a collection bound
	// at its type.
	CollectionElement
	// MapEntry contributes one key-value pair to a map-shaped
	// collection bound at its type.
	MapEntry
	// Weak marks a dependency edge that exists at resolution time but
	// is excluded from cycle detection.
	Weak
	// LazyIndirection wraps the provider's type in a lazy-provider
	// indirection (e.g. "Provider<X>").
	LazyIndirection
)

func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case CollectionElement:
		return "collectionElement"
	case MapEntry:
		return "mapEntry"
	case Weak:
		return "weak"
	case LazyIndirection:
		return "lazyIndirection"
	default:
		return "unknown"
	}
}

// MarshalJSON renders Kind as its String() name, so fixtures read
// "kind": "weak" rather than a bare integer.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts either the String() name or a bare integer, the
// latter purely so fixtures generated programmatically need not round
// the value through the name table.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case "standard", "":
			*k = Standard
		case "collectionElement":
			*k = CollectionElement
		case "mapEntry":
			*k = MapEntry
		case "weak":
			*k = Weak
		case "lazyIndirection":
			*k = LazyIndirection
		default:
			return fmt.Errorf("rawiface: unknown provider kind %q", name)
		}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("rawiface: decode kind: %w", err)
	}
	*k = Kind(n)
	return nil
}

// RawProvider is a single binding declaration as extracted from source.
type RawProvider struct {
	Type         TypeSpec   `json:"type"`
	Dependencies []TypeSpec `json:"dependencies,omitempty"`
	DebugOrigin  string     `json:"debugOrigin,omitempty"`
	Kind         Kind       `json:"kind"`
}

// RawModule is a reusable bundle of bindings and subcomponent
// installations, as extracted from one or more compilation units.
type RawModule struct {
	Type            string        `json:"type"`
	Providers       []RawProvider `json:"providers,omitempty"`
	IncludedModules []string      `json:"includedModules,omitempty"`
	Subcomponents   []string      `json:"subcomponents,omitempty"`
}

// RawComponent is a named scope declaration as extracted from source.
type RawComponent struct {
	Type                     string        `json:"type"`
	IsRoot                   bool          `json:"isRoot,omitempty"`
	RootType                 TypeSpec      `json:"rootType,omitempty"`
	Providers                []RawProvider `json:"providers,omitempty"`
	IncludedModules          []string      `json:"includedModules,omitempty"`
	Subcomponents            []string      `json:"subcomponents,omitempty"`
	SeedProvider             *RawProvider  `json:"seedProvider,omitempty"`
	ComponentFactoryProvider *RawProvider  `json:"componentFactoryProvider,omitempty"`
}

// RawInterface is the complete front-end output for one compilation
// unit (or, after concatenation, for several): a sequence of raw
// modules and a sequence of raw components, none yet deduplicated.
type RawInterface struct {
	Modules    []RawModule    `json:"modules,omitempty"`
	Components []RawComponent `json:"components,omitempty"`
}

// Merge concatenates another RawInterface's modules and components onto
// this one, in order. This models several compilation units contributing
// fragments of the same module/component before linking; it performs no
// deduplication — that is the Linker's job.
func (r RawInterface) Merge(others ...RawInterface) RawInterface {
	out := RawInterface{
		Modules:    append([]RawModule(nil), r.Modules...),
		Components: append([]RawComponent(nil), r.Components...),
	}
	for _, o := range others {
		out.Modules = append(out.Modules, o.Modules...)
		out.Components = append(out.Components, o.Components...)
	}
	return out
}

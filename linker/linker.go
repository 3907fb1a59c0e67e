// Package linker deduplicates and merges raw module and component
// declarations sharing a canonical type name across compilation units
// into a single LinkedInterface. The Linker never fails: malformed or
// contradictory declarations are a later stage's problem.
package linker

import "github.com/dilink/dilink/rawiface"

// LinkedModule is the merged form of every RawModule sharing a type
// name across all compilation units.
type LinkedModule struct {
	Type            string
	Providers       []rawiface.RawProvider
	IncludedModules []string
	Subcomponents   []string
}

// LinkedComponent is the merged form of every RawComponent sharing a
// type name across all compilation units.
type LinkedComponent struct {
	Type                     string
	IsRoot                   bool
	RootType                 rawiface.TypeSpec
	Providers                []rawiface.RawProvider
	IncludedModules          []string
	Subcomponents            []string
	SeedProvider             *rawiface.RawProvider
	ComponentFactoryProvider *rawiface.RawProvider
}

// LinkedInterface is a bag of LinkedModules and LinkedComponents with
// the invariant that every distinct type name occurs at most once in
// each namespace (modules and components are disjoint namespaces).
type LinkedInterface struct {
	Modules    map[string]*LinkedModule
	Components map[string]*LinkedComponent

	// ComponentOrder preserves the first-seen order of component type
	// names across the input, for deterministic iteration of roots.
	ComponentOrder []string
}

// Link folds a RawInterface into a LinkedInterface. Merging two entries
// sharing a name concatenates each list-valued field, preserving
// left-to-right input order for deterministic diagnostics. For a
// component's scalar fields a later fragment's non-zero value wins, so
// when two fragments set different non-zero values, input order decides
// the result.
func Link(raw rawiface.RawInterface) *LinkedInterface {
	li := &LinkedInterface{
		Modules:    make(map[string]*LinkedModule),
		Components: make(map[string]*LinkedComponent),
	}

	for _, m := range raw.Modules {
		li.mergeModule(m)
	}
	for _, c := range raw.Components {
		li.mergeComponent(c)
	}

	return li
}

func (li *LinkedInterface) mergeModule(m rawiface.RawModule) {
	existing, ok := li.Modules[m.Type]
	if !ok {
		li.Modules[m.Type] = &LinkedModule{
			Type:            m.Type,
			Providers:       append([]rawiface.RawProvider(nil), m.Providers...),
			IncludedModules: append([]string(nil), m.IncludedModules...),
			Subcomponents:   append([]string(nil), m.Subcomponents...),
		}
		return
	}
	existing.Providers = append(existing.Providers, m.Providers...)
	existing.IncludedModules = append(existing.IncludedModules, m.IncludedModules...)
	existing.Subcomponents = append(existing.Subcomponents, m.Subcomponents...)
}

func (li *LinkedInterface) mergeComponent(c rawiface.RawComponent) {
	existing, ok := li.Components[c.Type]
	if !ok {
		li.Components[c.Type] = &LinkedComponent{
			Type:                     c.Type,
			IsRoot:                   c.IsRoot,
			RootType:                 c.RootType,
			Providers:                append([]rawiface.RawProvider(nil), c.Providers...),
			IncludedModules:          append([]string(nil), c.IncludedModules...),
			Subcomponents:            append([]string(nil), c.Subcomponents...),
			SeedProvider:             c.SeedProvider,
			ComponentFactoryProvider: c.ComponentFactoryProvider,
		}
		li.ComponentOrder = append(li.ComponentOrder, c.Type)
		return
	}
	existing.Providers = append(existing.Providers, c.Providers...)
	existing.IncludedModules = append(existing.IncludedModules, c.IncludedModules...)
	existing.Subcomponents = append(existing.Subcomponents, c.Subcomponents...)
	// isRoot, rootType, seedProvider, and componentFactoryProvider are
	// scalar fields: a later fragment's non-zero value wins, matching
	// "fold across inputs... when an entry already exists, merge."
	if c.IsRoot {
		existing.IsRoot = true
	}
	if c.RootType != "" {
		existing.RootType = c.RootType
	}
	if c.SeedProvider != nil {
		existing.SeedProvider = c.SeedProvider
	}
	if c.ComponentFactoryProvider != nil {
		existing.ComponentFactoryProvider = c.ComponentFactoryProvider
	}
}

// Roots returns every LinkedComponent marked IsRoot, in first-seen
// input order, matching "the resolver's top-level entry point iterates
// components with isRoot == true (in input order after merge)."
func (li *LinkedInterface) Roots() []*LinkedComponent {
	var roots []*LinkedComponent
	for _, name := range li.ComponentOrder {
		c := li.Components[name]
		if c.IsRoot {
			roots = append(roots, c)
		}
	}
	return roots
}

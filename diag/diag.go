// Package diag implements the ResolutionError sum type and the
// append-only Collector used to gather diagnostics during resolution.
// Diagnostics are collected, never thrown: a defect in the DI graph is
// data describing that graph, not a program fault.
package diag

import (
	"fmt"
	"strings"

	"github.com/dilink/dilink/canon"
)

// Kind discriminates the variants of Error.
type Kind int

const (
	// MissingModule: a module name was referenced but is absent from
	// the LinkedInterface.
	MissingModule Kind = iota
	// MissingSubcomponent: a component name was referenced as
	// installed but is absent.
	MissingSubcomponent
	// DuplicateProvider: more than one non-collection provider is
	// bound to the same TypeKey.
	DuplicateProvider
	// MissingProvider: no provider in the scope chain satisfies a
	// dependency.
	MissingProvider
	// CyclicalDependency: an intra-scope cycle was found.
	CyclicalDependency
)

func (k Kind) String() string {
	switch k {
	case MissingModule:
		return "missingModule"
	case MissingSubcomponent:
		return "missingSubcomponent"
	case DuplicateProvider:
		return "duplicateProvider"
	case MissingProvider:
		return "missingProvider"
	case CyclicalDependency:
		return "cyclicalDependency"
	default:
		return "unknown"
	}
}

// Error is the single ResolutionError sum type. Only the fields
// relevant to Kind are populated; see the Kind constants for which.
type Error struct {
	Kind Kind

	// MissingModule / MissingSubcomponent
	Name string

	// DuplicateProvider
	Duplicates []canon.CanonicalProvider

	// MissingProvider
	Dependency       canon.TypeKey
	DependedUpon     *canon.CanonicalProvider // nil when the root's rootType is unsatisfiable
	SuggestedModules []string

	// CyclicalDependency
	Chain []canon.TypeKey
}

// Error implements the error interface so Error can be used anywhere a
// plain Go error is expected (e.g. wrapped for the fixture/CLI layer),
// without being thrown as control flow internally.
func (e Error) Error() string {
	switch e.Kind {
	case MissingModule:
		return fmt.Sprintf("missing module %q", e.Name)
	case MissingSubcomponent:
		return fmt.Sprintf("missing subcomponent %q", e.Name)
	case DuplicateProvider:
		labels := make([]string, len(e.Duplicates))
		for i, d := range e.Duplicates {
			labels[i] = fmt.Sprintf("%s.%s", d.Origin.Owner, d.Origin.Label)
		}
		return fmt.Sprintf("duplicate providers for %s: %s", firstTarget(e.Duplicates), strings.Join(labels, ", "))
	case MissingProvider:
		if e.DependedUpon == nil {
			return fmt.Sprintf("no provider for root type %s", e.Dependency)
		}
		return fmt.Sprintf("no provider for %s, required by %s.%s", e.Dependency, e.DependedUpon.Origin.Owner, e.DependedUpon.Origin.Label)
	case CyclicalDependency:
		parts := make([]string, len(e.Chain))
		for i, k := range e.Chain {
			parts[i] = string(k)
		}
		return fmt.Sprintf("cyclical dependency: %s", strings.Join(parts, " -> "))
	default:
		return "unknown resolution error"
	}
}

func firstTarget(ds []canon.CanonicalProvider) canon.TypeKey {
	if len(ds) == 0 {
		return ""
	}
	return ds[0].Target
}

// MissingModuleError builds a MissingModule diagnostic.
func MissingModuleError(name string) Error {
	return Error{Kind: MissingModule, Name: name}
}

// MissingSubcomponentError builds a MissingSubcomponent diagnostic.
func MissingSubcomponentError(name string) Error {
	return Error{Kind: MissingSubcomponent, Name: name}
}

// DuplicateProviderError builds a DuplicateProvider diagnostic.
func DuplicateProviderError(duplicates []canon.CanonicalProvider) Error {
	return Error{Kind: DuplicateProvider, Duplicates: duplicates}
}

// MissingProviderError builds a MissingProvider diagnostic. dependedUpon
// is nil for the synthetic root-type dependency.
func MissingProviderError(dep canon.TypeKey, dependedUpon *canon.CanonicalProvider, suggested []string) Error {
	return Error{Kind: MissingProvider, Dependency: dep, DependedUpon: dependedUpon, SuggestedModules: suggested}
}

// CyclicalDependencyError builds a CyclicalDependency diagnostic. chain
// satisfies chain[0] == chain[len(chain)-1].
func CyclicalDependencyError(chain []canon.TypeKey) Error {
	return Error{Kind: CyclicalDependency, Chain: chain}
}

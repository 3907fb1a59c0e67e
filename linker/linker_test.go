package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilink/dilink/rawiface"
)

func TestLinkMergesSameNameModules(t *testing.T) {
	ri := rawiface.RawInterface{
		Modules: []rawiface.RawModule{
			{Type: "AppModule", Providers: []rawiface.RawProvider{{Type: "Logger"}}, IncludedModules: []string{"NetModule"}},
			{Type: "AppModule", Providers: []rawiface.RawProvider{{Type: "Cache"}}, IncludedModules: []string{"DBModule"}},
		},
	}

	li := Link(ri)

	m, ok := li.Modules["AppModule"]
	require.True(t, ok, "expected AppModule to exist after merge")
	require.Len(t, m.Providers, 2)
	assert.Equal(t, rawiface.TypeSpec("Logger"), m.Providers[0].Type)
	assert.Equal(t, rawiface.TypeSpec("Cache"), m.Providers[1].Type)
	assert.Equal(t, []string{"NetModule", "DBModule"}, m.IncludedModules)
}

func TestLinkNeverFailsOnUnknownReferences(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: true, IncludedModules: []string{"MissingModule"}},
		},
	}
	li := Link(ri)
	_, ok := li.Components["AppComponent"]
	assert.True(t, ok, "Link must never fail or drop a component for referencing an unknown module")
}

func TestLinkComponentScalarFieldsLaterNonZeroWins(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: false},
			{Type: "AppComponent", IsRoot: true, RootType: "App"},
		},
	}
	li := Link(ri)
	c := li.Components["AppComponent"]
	assert.True(t, c.IsRoot)
	assert.Equal(t, rawiface.TypeSpec("App"), c.RootType)
}

func TestRootsPreservesFirstSeenOrder(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "B", IsRoot: true},
			{Type: "A", IsRoot: true},
			{Type: "C", IsRoot: false},
		},
	}
	li := Link(ri)
	roots := li.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, []string{"B", "A"}, names(roots))
}

func names(cs []*LinkedComponent) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Type
	}
	return out
}

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilink/dilink/canon"
	"github.com/dilink/dilink/linker"
	"github.com/dilink/dilink/rawiface"
)

func TestResolveBuildsModuleClosure(t *testing.T) {
	ri := rawiface.RawInterface{
		Modules: []rawiface.RawModule{
			{Type: "NetModule", Providers: []rawiface.RawProvider{{Type: "HTTPClient"}}},
			{Type: "AppModule", IncludedModules: []string{"NetModule"}},
		},
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: true, RootType: "App", IncludedModules: []string{"AppModule"}, Providers: []rawiface.RawProvider{{Type: "App", Dependencies: []rawiface.TypeSpec{"HTTPClient"}}}},
		},
	}
	li := linker.Link(ri)
	c := li.Components["AppComponent"]

	result := Resolve(li, c, nil)

	require.Empty(t, result.Diagnostics)
	assert.Len(t, result.ModuleClosure, 2)
	assert.True(t, result.Bindings.Satisfied(canon.NewTypeKey("HTTPClient")))
}

func TestResolveMissingModuleDiagnostic(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: true, IncludedModules: []string{"GhostModule"}},
		},
	}
	li := linker.Link(ri)
	c := li.Components["AppComponent"]

	result := Resolve(li, c, nil)
	require.Len(t, result.Diagnostics, 1)
}

func TestResolveDuplicateNonCollectionProviderDiagnostic(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: true, Providers: []rawiface.RawProvider{
				{Type: "Logger", DebugOrigin: "NewLogger1"},
				{Type: "Logger", DebugOrigin: "NewLogger2"},
			}},
		},
	}
	li := linker.Link(ri)
	c := li.Components["AppComponent"]

	result := Resolve(li, c, nil)
	require.Len(t, result.Diagnostics, 1)
}

func TestResolveCollectionOnlyDuplicatesAreLegal(t *testing.T) {
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "AppComponent", IsRoot: true, Providers: []rawiface.RawProvider{
				{Type: "Plugin", Kind: rawiface.CollectionElement, DebugOrigin: "PluginA"},
				{Type: "Plugin", Kind: rawiface.CollectionElement, DebugOrigin: "PluginB"},
			}},
		},
	}
	li := linker.Link(ri)
	c := li.Components["AppComponent"]

	result := Resolve(li, c, nil)
	require.Empty(t, result.Diagnostics)
	group := result.Bindings.Local[canon.Collection("Plugin")]
	assert.Len(t, group, 2)
}

func TestResolveChainsParentScope(t *testing.T) {
	parent := &ComponentBindings{
		ComponentName: "AppComponent",
		Local:         map[canon.TypeKey][]canon.CanonicalProvider{canon.NewTypeKey("Logger"): {{Target: canon.NewTypeKey("Logger")}}},
	}
	ri := rawiface.RawInterface{
		Components: []rawiface.RawComponent{
			{Type: "RequestComponent", Providers: []rawiface.RawProvider{{Type: "Worker", Dependencies: []rawiface.TypeSpec{"Logger"}}}},
		},
	}
	li := linker.Link(ri)
	c := li.Components["RequestComponent"]

	result := Resolve(li, c, parent)
	assert.True(t, result.Bindings.Satisfied(canon.NewTypeKey("Logger")))
	assert.False(t, result.Bindings.DefinedLocally(canon.NewTypeKey("Logger")))
}

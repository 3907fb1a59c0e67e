package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dilink/dilink/rawiface"
)

func TestCanonicalizeWrapperPriority(t *testing.T) {
	tests := []struct {
		name       string
		kind       rawiface.Kind
		typeName   string
		wantTarget TypeKey
		wantWeak   bool
		wantLazy   bool
		wantColl   bool
		wantMap    bool
	}{
		{"standard", rawiface.Standard, "Logger", NewTypeKey("Logger"), false, false, false, false},
		{"lazy", rawiface.LazyIndirection, "Worker", NewTypeKey("Worker"), false, true, false, false},
		{"weak", rawiface.Weak, "Cache", NewTypeKey("Cache"), true, false, false, false},
		{"collectionElement", rawiface.CollectionElement, "Plugin", Collection("Plugin"), false, false, true, false},
		{"mapEntry", rawiface.MapEntry, "Plugin", Collection("Plugin"), false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawiface.RawProvider{Type: rawiface.TypeSpec(tt.typeName), Kind: tt.kind}
			cp := Canonicalize("TestModule", raw)

			assert.Equal(t, tt.wantTarget, cp.Target, "a weak/lazy provider must keep the bare key so bare dependencies still link to it")
			assert.Equal(t, tt.wantWeak, cp.IsWeak)
			assert.Equal(t, tt.wantLazy, cp.IsLazy)
			assert.Equal(t, tt.wantColl, cp.IsCollectionProvider)
			assert.Equal(t, tt.wantMap, cp.IsMapEntry)
		})
	}
}

func TestCanonicalizeDependenciesWrapUnchanged(t *testing.T) {
	raw := rawiface.RawProvider{
		Type:         "Server",
		Dependencies: []rawiface.TypeSpec{"Logger", "W:Cache", "P:Worker"},
	}
	cp := Canonicalize("AppModule", raw)

	want := []TypeKey{NewTypeKey("Logger"), Weak("Cache"), Lazy("Worker")}
	assert.Equal(t, want, cp.Dependencies)
}

func TestCanonicalizeCarriesOrigin(t *testing.T) {
	raw := rawiface.RawProvider{Type: "Logger", DebugOrigin: "NewLogger"}
	cp := Canonicalize("AppModule", raw)

	assert.Equal(t, Origin{Owner: "AppModule", Label: "NewLogger"}, cp.Origin)
}

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilink/dilink/canon"
)

func TestCollectorIsAppendOnlyAndOrdered(t *testing.T) {
	c := NewCollector()
	require.True(t, c.OK())

	c.Add(MissingModuleError("M1"))
	c.Add(MissingModuleError("M2"))

	assert.False(t, c.OK())
	assert.Equal(t, 2, c.Len())
	errs := c.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "M1", errs[0].Name)
	assert.Equal(t, "M2", errs[1].Name)

	errs[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.Errors()[0].Name, "Errors() must return a defensive copy")
}

func TestCyclicalDependencyErrorMessage(t *testing.T) {
	chain := []canon.TypeKey{canon.NewTypeKey("A"), canon.NewTypeKey("B"), canon.NewTypeKey("A")}
	e := CyclicalDependencyError(chain)
	assert.Equal(t, "cyclical dependency: A -> B -> A", e.Error())
}

func TestMissingProviderErrorDistinguishesRootType(t *testing.T) {
	dep := canon.NewTypeKey("App")
	rootErr := MissingProviderError(dep, nil, nil)
	assert.Equal(t, "no provider for root type App", rootErr.Error())

	depended := canon.CanonicalProvider{Target: canon.NewTypeKey("Server"), Origin: canon.Origin{Owner: "AppModule", Label: "NewServer"}}
	depErr := MissingProviderError(dep, &depended, nil)
	assert.Equal(t, "no provider for App, required by AppModule.NewServer", depErr.Error())
}

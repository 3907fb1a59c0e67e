package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONStripsComments(t *testing.T) {
	data := []byte(`{
		// a logger provider
		"modules": [
			{
				"type": "AppModule",
				"providers": [
					{ "type": "Logger" } /* trailing note */
				]
			}
		]
	}`)

	ri, err := LoadJSON(data)
	require.NoError(t, err)
	require.Len(t, ri.Modules, 1)
	assert.Equal(t, "AppModule", ri.Modules[0].Type)
	require.Len(t, ri.Modules[0].Providers, 1)
	assert.EqualValues(t, "Logger", ri.Modules[0].Providers[0].Type)
}

func TestLoadTxtarMergesCompilationUnits(t *testing.T) {
	data := []byte(`-- unit1.json --
{"modules": [{"type": "AppModule", "providers": [{"type": "Logger"}]}]}
-- unit2.json --
{"modules": [{"type": "AppModule", "providers": [{"type": "Cache"}]}]}
`)

	ri, err := LoadTxtar(data)
	require.NoError(t, err)
	assert.Len(t, ri.Modules, 2, "Merge must keep both fragments unmerged until Link runs")
}

func TestLoadDispatchesOnTxtarMarker(t *testing.T) {
	plain := []byte(`{"modules": []}`)
	assert.False(t, looksLikeTxtar(plain))

	archive := []byte("-- a.json --\n{}\n")
	assert.True(t, looksLikeTxtar(archive))
}

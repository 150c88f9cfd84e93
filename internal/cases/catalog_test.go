package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
)

func TestLoadCatalog_EmbeddedDefault(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 3)
	assert.Equal(t, domain.CaseFree, list[0].Type)
	assert.Equal(t, domain.CaseRegular, list[1].Type)
	assert.Equal(t, domain.CaseSnoop, list[2].Type)

	free, ok := catalog.Get(domain.CaseFree)
	require.True(t, ok)
	assert.True(t, free.Cost.IsZero())
	require.Len(t, free.Rewards, 1)
	assert.Equal(t, "0.05", free.Rewards[0].Value.String())

	regular, _ := catalog.Get(domain.CaseRegular)
	assert.Equal(t, "5", regular.Cost.String())
	snoop, _ := catalog.Get(domain.CaseSnoop)
	assert.Equal(t, "7", snoop.Cost.String())

	// chances of the shipped tables add up to 100%
	for _, cs := range list {
		var total int64
		for _, w := range catalog.weights[cs.Type] {
			total += w
		}
		assert.Equal(t, int64(100*weightScale), total, cs.Type)
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cases":[{"type":"free","cost":0,"rewards":[{"name":"x","value":1,"kind":"ton","chance":1}]}]}`), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, catalog.List(), 1)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"empty", `{"cases":[]}`},
		{"duplicate", `{"cases":[{"type":"a","rewards":[{"kind":"ton","chance":1}]},{"type":"a","rewards":[{"kind":"ton","chance":1}]}]}`},
		{"no chance", `{"cases":[{"type":"a","rewards":[{"kind":"ton","chance":0}]}]}`},
		{"bad kind", `{"cases":[{"type":"a","rewards":[{"kind":"car","chance":1}]}]}`},
		{"negative cost", `{"cases":[{"type":"a","cost":-1,"rewards":[{"kind":"ton","chance":1}]}]}`},
		{"negative value", `{"cases":[{"type":"a","rewards":[{"kind":"ton","value":-1,"chance":1}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

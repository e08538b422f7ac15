package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCatalog(t *testing.T) *ItemCatalog {
	t.Helper()
	catalog, err := NewItemCatalog([]*Item{
		{ID: 1, Tier: 1, Starter: true},
		{ID: 2, Tier: 2, ParentID: 1},
		{ID: 3, Tier: 1, Starter: true},
		{ID: 20, Tier: 3},
		{ID: 21, Tier: 4, ParentID: 20},
		{ID: 22, Tier: 4, ParentID: 20, Glyph: true},
		{ID: 30, Tier: 3},
		{ID: 31, Tier: 3},
		{ID: 32, Tier: 3},
		{ID: 33, Tier: 3},
		{ID: 40, Tier: 4, Glyph: true},
		{ID: 50, Tier: 3}, // signature chain
	})
	require.NoError(t, err)
	return catalog
}

func TestBuildValidate(t *testing.T) {
	t.Parallel()

	catalog := buildTestCatalog(t)
	pick := func(ids ...int32) []*Item {
		items := make([]*Item, len(ids))
		for i, id := range ids {
			items[i] = catalog.Lookup(id)
		}
		return items
	}

	tests := []struct {
		name       string
		ch         *Character
		items      []*Item
		wantReason string
	}{
		{
			name:  "valid full build",
			items: pick(2, 20, 30, 31, 32, 33),
		},
		{
			name:       "too many items",
			items:      pick(2, 20, 30, 31, 32, 33, 40),
			wantReason: "too many items",
		},
		{
			name:       "item with its own evolution",
			items:      pick(20, 21),
			wantReason: "duplicate upgrade chain",
		},
		{
			name:       "item with its glyphed form",
			items:      pick(20, 22),
			wantReason: "duplicate upgrade chain",
		},
		{
			name:       "two starter chains",
			items:      pick(2, 3),
			wantReason: "multiple starter items",
		},
		{
			name:       "two glyphs",
			items:      pick(22, 40),
			wantReason: "multiple glyphs",
		},
		{
			name:       "signature item missing at full size",
			ch:         &Character{SignatureRootID: 50},
			items:      pick(2, 20, 30, 31, 32, 33),
			wantReason: "signature item missing",
		},
		{
			name:  "signature item present",
			ch:    &Character{SignatureRootID: 50},
			items: pick(2, 20, 30, 31, 32, 50),
		},
		{
			name:  "partial build without signature is fine",
			ch:    &Character{SignatureRootID: 50},
			items: pick(2, 20, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &Build{Character: tt.ch, Items: tt.items}
			err := b.Validate(catalog)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var invErr *BuildInvariantError
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, tt.wantReason, invErr.Reason)
		})
	}
}

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avessi/godforge/internal/model"
)

func writeCache(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const characterCache = `[
  {
    "id": 1,
    "name": "Swift Arrow",
    "role": "hunter",
    "type": "physical",
    "uses_mana": true,
    "stats": {
      "attack speed": {"base": 1.0, "per_level": 0.012},
      "health": {"base": 400, "per_level": 75},
      "physical power": {"base": 38, "per_level": 2}
    },
    "basic_attack": {"base": 35, "per_level": 2, "scaling": 0.4}
  },
  {
    "id": 2,
    "name": "Twin Fang",
    "role": "assassin",
    "type": "physical",
    "uses_mana": false,
    "signature_root_id": 900,
    "stats": {},
    "basic_attack": {
      "base": 20, "per_level": 1.5, "scaling": 0.25,
      "second_hit": {"base": 10, "per_level": 0.5, "scaling": 0.15},
      "damage_progression": [1, 1, 1.5],
      "swing_progression": [1, 1, 1.2]
    }
  }
]`

const itemCache = `[
  {
    "id": 10,
    "name": "Hunter's Bow",
    "tier": 1,
    "price": 650,
    "kind": "equipment",
    "starter": true,
    "properties": [
      {"stat": "physical power", "flat": 15},
      {"stat": "attack speed", "percent": 0.1}
    ]
  },
  {
    "id": 11,
    "name": "Hunter's Longbow",
    "tier": 2,
    "parent_id": 10,
    "price": 850,
    "kind": "equipment",
    "restricted_roles": ["mage", "guardian"],
    "properties": [
      {"stat": "physical power", "flat": 25}
    ],
    "effects": [
      {"trigger": "on_hit", "kind": "shred_stack", "value": 0.05, "duration": 5, "max_stacks": 3}
    ]
  }
]`

func TestLoadCharacters(t *testing.T) {
	t.Parallel()

	path := writeCache(t, "characters.json", characterCache)
	catalog, err := LoadCharacters(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	hunter, err := catalog.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Swift Arrow", hunter.Name)
	assert.Equal(t, model.RoleHunter, hunter.Role)
	assert.Equal(t, model.DamagePhysical, hunter.Type)
	assert.True(t, hunter.UsesMana)
	assert.InDelta(t, 1.24, hunter.StatAt(model.AttrAttackSpeed, 20), 1e-9)
	assert.InDelta(t, 35, hunter.Attack.Base, 1e-9)

	twin, err := catalog.Get(2)
	require.NoError(t, err)
	assert.False(t, twin.UsesMana)
	assert.Equal(t, int32(900), twin.SignatureRootID)
	require.NotNil(t, twin.Attack.SecondHit)
	assert.InDelta(t, 10, twin.Attack.SecondHit.Base, 1e-9)
	assert.Equal(t, []float64{1, 1, 1.5}, twin.Attack.DamageProgression)
}

func TestLoadItems(t *testing.T) {
	t.Parallel()

	path := writeCache(t, "items.json", itemCache)
	catalog, err := LoadItems(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	bow, err := catalog.Get(10)
	require.NoError(t, err)
	assert.True(t, bow.Starter)
	assert.Equal(t, model.KindEquipment, bow.Kind)
	require.Len(t, bow.Properties, 2)
	assert.Equal(t, model.AttrPhysicalPower, bow.Properties[0].Attribute)
	assert.InDelta(t, 0.1, bow.Properties[1].Percent, 1e-9)

	longbow, err := catalog.Get(11)
	require.NoError(t, err)
	assert.Equal(t, int32(10), longbow.RootID, "chain root precomputed on load")
	assert.True(t, longbow.RestrictedFor(model.RoleMage))
	assert.False(t, longbow.RestrictedFor(model.RoleHunter))
	require.Len(t, longbow.Effects, 1)
	assert.Equal(t, model.EffectShredStack, longbow.Effects[0].Kind)
	assert.Equal(t, model.TriggerOnHit, longbow.Effects[0].Trigger)
	assert.Equal(t, int32(3), longbow.Effects[0].MaxStacks)
}

func TestLoadCharactersUnknownStat(t *testing.T) {
	t.Parallel()

	path := writeCache(t, "bad.json", `[
	  {"id": 1, "name": "X", "role": "mage", "type": "magical",
	   "stats": {"swagger": {"base": 1}}, "basic_attack": {"base": 1}}
	]`)
	_, err := LoadCharacters(path)
	assert.ErrorContains(t, err, "unknown stat")
}

func TestLoadItemsUnknownEffectKind(t *testing.T) {
	t.Parallel()

	path := writeCache(t, "bad.json", `[
	  {"id": 1, "name": "X", "tier": 3, "price": 1, "kind": "equipment",
	   "properties": [], "effects": [{"trigger": "on_hit", "kind": "explode"}]}
	]`)
	_, err := LoadItems(path)
	assert.ErrorContains(t, err, "unknown effect kind")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCharacters(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	_, err = LoadItems(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

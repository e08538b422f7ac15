package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avessi/godforge/internal/model"
)

func attacker() *model.Character {
	return &model.Character{
		ID:       1,
		Name:     "Test Hunter",
		Role:     model.RoleHunter,
		Type:     model.DamagePhysical,
		UsesMana: true,
		Stats: map[model.Attribute]model.BaseStat{
			model.AttrAttackSpeed:   {Base: 1.0},
			model.AttrPhysicalPower: {Base: 100},
		},
		Attack: model.BasicAttack{
			HitParams: model.HitParams{Base: 35, PerLevel: 2, Scaling: 0.4},
		},
	}
}

func defender(health, prot, hp5 float64) *model.Character {
	return &model.Character{
		ID:       2,
		Name:     "Test Guardian",
		Role:     model.RoleGuardian,
		Type:     model.DamageMagical,
		UsesMana: true,
		Stats: map[model.Attribute]model.BaseStat{
			model.AttrHealth:             {Base: health},
			model.AttrPhysicalProtection: {Base: prot},
			model.AttrHP5:                {Base: hp5},
		},
	}
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func mustCombatant(t *testing.T, ch *model.Character, items []*model.Item) *Combatant {
	t.Helper()
	c, err := NewCombatant(ch, items, 20)
	require.NoError(t, err)
	return c
}

func TestHitDamageFormula(t *testing.T) {
	t.Parallel()

	// base 35 + per_level 2 * level 20 + scaling 0.4 * power 100 = 115.
	att := mustCombatant(t, attacker(), nil)
	got := att.hitDamage(&att.Character.Attack.HitParams)
	assert.InDelta(t, 115, got, 1e-9)
}

func TestMitigationAgainstProtection(t *testing.T) {
	t.Parallel()

	// raw 115 against 100 protection: 100*115/200 = 57.5 per swing.
	// Exactly one swing kills 57.5 health at 1.0 attack speed.
	att := mustCombatant(t, attacker(), nil)
	def := mustCombatant(t, defender(57.5, 100, 0), nil)

	ttk, err := New(testRng()).TTK(att, def)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ttk, 1e-9)
}

func TestTTKMonotonicInDefenderHealth(t *testing.T) {
	t.Parallel()

	att := mustCombatant(t, attacker(), nil)
	s := New(testRng())

	small, err := s.TTK(att, mustCombatant(t, defender(500, 100, 0), nil))
	require.NoError(t, err)
	large, err := s.TTK(att, mustCombatant(t, defender(1000, 100, 0), nil))
	require.NoError(t, err)
	assert.LessOrEqual(t, small, large)
}

func TestRegenProlongsFight(t *testing.T) {
	t.Parallel()

	att := mustCombatant(t, attacker(), nil)
	s := New(testRng())

	still, err := s.TTK(att, mustCombatant(t, defender(1000, 100, 0), nil))
	require.NoError(t, err)
	regen, err := s.TTK(att, mustCombatant(t, defender(1000, 100, 50), nil))
	require.NoError(t, err)
	assert.Greater(t, regen, still)
}

func TestCannotKill(t *testing.T) {
	t.Parallel()

	weak := attacker()
	weak.Attack.HitParams = model.HitParams{Base: 1}
	weak.Stats[model.AttrPhysicalPower] = model.BaseStat{}

	att := mustCombatant(t, weak, nil)
	// 100 health per second regenerated vs ~1 damage per swing.
	def := mustCombatant(t, defender(1000, 0, 500), nil)

	s := New(testRng())
	s.MaxSwings = 200
	_, err := s.TTK(att, def)
	assert.ErrorIs(t, err, model.ErrCannotKill)
}

func TestShredStacksShortenFight(t *testing.T) {
	t.Parallel()

	shredItem := &model.Item{
		ID: 100, Kind: model.KindEquipment, Tier: 3,
		Effects: []model.EffectRule{{
			Trigger:   model.TriggerOnHit,
			Kind:      model.EffectShredStack,
			Value:     0.10,
			Duration:  5,
			MaxStacks: 3,
		}},
	}

	s := New(testRng())
	def := defender(2000, 200, 0)

	plain, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, def, nil))
	require.NoError(t, err)
	shredded, err := s.TTK(mustCombatant(t, attacker(), []*model.Item{shredItem}), mustCombatant(t, def, nil))
	require.NoError(t, err)
	assert.Less(t, shredded, plain)
}

func TestExecuteEffect(t *testing.T) {
	t.Parallel()

	executeItem := &model.Item{
		ID: 101, Kind: model.KindEquipment, Tier: 3,
		Effects: []model.EffectRule{{
			Trigger: model.TriggerOnHit,
			Kind:    model.EffectExecute,
			Value:   0.05,
		}},
	}

	s := New(testRng())
	def := defender(2000, 100, 0)

	plain, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, def, nil))
	require.NoError(t, err)
	executed, err := s.TTK(mustCombatant(t, attacker(), []*model.Item{executeItem}), mustCombatant(t, def, nil))
	require.NoError(t, err)
	assert.Less(t, executed, plain)
}

func TestCritShortensFight(t *testing.T) {
	t.Parallel()

	critItem := &model.Item{
		ID: 102, Kind: model.KindEquipment, Tier: 3,
		Properties: []model.Property{
			{Attribute: model.AttrCritChance, Percent: 1.0},
		},
	}

	s := New(testRng())
	def := defender(2000, 100, 0)

	plain, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, def, nil))
	require.NoError(t, err)
	critting, err := s.TTK(mustCombatant(t, attacker(), []*model.Item{critItem}), mustCombatant(t, def, nil))
	require.NoError(t, err)
	assert.Less(t, critting, plain)
}

func TestCritSuppression(t *testing.T) {
	t.Parallel()

	critItem := &model.Item{
		ID: 102, Kind: model.KindEquipment, Tier: 3,
		Properties: []model.Property{
			{Attribute: model.AttrCritChance, Percent: 1.0},
		},
	}
	suppressItem := &model.Item{
		ID: 103, Kind: model.KindEquipment, Tier: 3,
		Effects: []model.EffectRule{{
			Trigger: model.TriggerPassive,
			Kind:    model.EffectCritSuppress,
			Value:   1.0,
		}},
	}

	s := New(testRng())
	att := mustCombatant(t, attacker(), []*model.Item{critItem})

	plain, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, defender(2000, 100, 0), []*model.Item{suppressItem}))
	require.NoError(t, err)
	suppressed, err := s.TTK(att, mustCombatant(t, defender(2000, 100, 0), []*model.Item{suppressItem}))
	require.NoError(t, err)
	// Fully suppressed crits bring the crit build back to baseline.
	assert.InDelta(t, plain, suppressed, 1e-9)
}

func TestSecondHitAddsDamage(t *testing.T) {
	t.Parallel()

	twin := attacker()
	twin.Attack.SecondHit = &model.HitParams{Base: 20, Scaling: 0.2}

	s := New(testRng())
	def := defender(2000, 100, 0)

	single, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, def, nil))
	require.NoError(t, err)
	double, err := s.TTK(mustCombatant(t, twin, nil), mustCombatant(t, def, nil))
	require.NoError(t, err)
	assert.Less(t, double, single)
}

func TestDamageProgressionCycle(t *testing.T) {
	t.Parallel()

	chained := attacker()
	chained.Attack.DamageProgression = []float64{1, 1, 1.5}

	att := mustCombatant(t, chained, nil)
	assert.InDelta(t, 1.0, att.damageMultiplier(0), 1e-9)
	assert.InDelta(t, 1.5, att.damageMultiplier(2), 1e-9)
	assert.InDelta(t, 1.0, att.damageMultiplier(3), 1e-9, "cycle wraps")
	assert.InDelta(t, 1.5, att.damageMultiplier(5), 1e-9)
}

func TestSpeedToPowerConversion(t *testing.T) {
	t.Parallel()

	base := attacker()
	base.Stats[model.AttrAttackSpeed] = model.BaseStat{Base: 1.5}

	converter := &model.Item{
		ID: 104, Kind: model.KindEquipment, Tier: 3,
		Properties: []model.Property{
			{Attribute: model.AttrAttackSpeed, Percent: 0.70},
		},
		Effects: []model.EffectRule{{
			Trigger: model.TriggerPassive,
			Kind:    model.EffectSpeedToPower,
			Value:   2,
		}},
	}

	c := mustCombatant(t, base, []*model.Item{converter})
	// Effective 2.55 clamps to 2.5; the 0.05 overcap converts at 2 power
	// per percent: 100 innate + 2*5 = 110.
	assert.InDelta(t, 2.5, c.attackSpeed, 1e-9)
	assert.InDelta(t, 110, c.power, 1e-6)
}

func TestThresholdMitigation(t *testing.T) {
	t.Parallel()

	bulwark := &model.Item{
		ID: 105, Kind: model.KindEquipment, Tier: 3,
		Effects: []model.EffectRule{{
			Trigger:   model.TriggerOnDefend,
			Kind:      model.EffectThresholdMitigation,
			Value:     0.25,
			Duration:  5,
			Cooldown:  30,
			Threshold: 0.5,
		}},
	}

	s := New(testRng())

	plain, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, defender(2000, 100, 0), nil))
	require.NoError(t, err)
	guarded, err := s.TTK(mustCombatant(t, attacker(), nil), mustCombatant(t, defender(2000, 100, 0), []*model.Item{bulwark}))
	require.NoError(t, err)
	assert.Greater(t, guarded, plain)
}

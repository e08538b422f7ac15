package sim

import (
	"fmt"
	"math"

	"github.com/avessi/godforge/internal/game/stats"
	"github.com/avessi/godforge/internal/model"
)

// Combatant — персонаж со сборкой, подготовленный к симуляции.
// Производные значения считаются один раз при создании.
type Combatant struct {
	Character *model.Character
	Items     []*model.Item
	Level     int32

	agg *model.AggregatedStats

	// Derived once per simulation call.
	maxHealth    float64
	power        float64
	attackSpeed  float64 // capped effective swings per second
	critChance   float64
	critBonus    float64 // base multiplier on a critical swing
	penFlat      float64
	penPercent   float64
	hp5          float64
	flatReduce   float64 // flat damage reduction on incoming hits
	physProt     float64
	magProt      float64
	overcapSpeed float64
}

// baseCritBonus — базовый множитель критического удара.
const baseCritBonus = 1.75

// NewCombatant aggregates the build and derives the combat stats at the
// given level. The build must already be cap-legal; a hard-cap violation
// here is a caller bug.
func NewCombatant(ch *model.Character, items []*model.Item, level int32) (*Combatant, error) {
	agg, ok := stats.Legal(ch, items)
	if !ok {
		return nil, fmt.Errorf("build for %s exceeds a hard stat cap", ch.Name)
	}

	c := &Combatant{
		Character: ch,
		Items:     items,
		Level:     level,
		agg:       agg,
	}
	c.derive()
	return c, nil
}

func (c *Combatant) derive() {
	ch := c.Character
	lvl := c.Level
	agg := c.agg

	c.maxHealth = ch.StatAt(model.AttrHealth, lvl) + agg.FlatOf(model.AttrHealth)
	c.hp5 = ch.StatAt(model.AttrHP5, lvl) + agg.FlatOf(model.AttrHP5)
	c.flatReduce = agg.FlatOf(model.AttrDamageReduction)

	c.physProt = ch.StatAt(model.AttrPhysicalProtection, lvl) + agg.FlatOf(model.AttrPhysicalProtection)
	c.magProt = ch.StatAt(model.AttrMagicalProtection, lvl) + agg.FlatOf(model.AttrMagicalProtection)

	var powerAttr, penAttr model.Attribute
	if ch.Type == model.DamageMagical {
		powerAttr, penAttr = model.AttrMagicalPower, model.AttrMagicalPenetration
	} else {
		powerAttr, penAttr = model.AttrPhysicalPower, model.AttrPhysicalPenetration
	}

	c.power = ch.StatAt(powerAttr, lvl) + agg.FlatOf(powerAttr)
	c.penFlat = agg.FlatOf(penAttr)
	c.penPercent = agg.PercentOf(penAttr)

	base := ch.StatAt(model.AttrAttackSpeed, lvl)
	effective := base + base*agg.PercentOf(model.AttrAttackSpeed)
	c.overcapSpeed = stats.OvercappedSpeed(ch, agg, lvl)
	c.attackSpeed = effective - c.overcapSpeed

	if ch.CanCrit() {
		c.critChance = math.Min(agg.PercentOf(model.AttrCritChance), 1)
	}
	c.critBonus = baseCritBonus

	// Attack speed beyond the cap converts into power when an item rule
	// allows carrying it.
	for _, rule := range c.rules(model.TriggerPassive, model.EffectSpeedToPower) {
		c.power += rule.Value * c.overcapSpeed * 100
	}
}

// hitDamage computes one hit instance before progression and crit.
// Formula: base + perLevel*level + scaling*power.
func (c *Combatant) hitDamage(hp *model.HitParams) float64 {
	return hp.Base + hp.PerLevel*float64(c.Level) + hp.Scaling*c.power
}

// damageMultiplier returns the progression damage multiplier for the
// swing index, cycling over the progression table.
func (c *Combatant) damageMultiplier(swing int) float64 {
	prog := c.Character.Attack.DamageProgression
	if len(prog) == 0 {
		return 1
	}
	return prog[swing%len(prog)]
}

// swingMultiplier returns the progression swing-time multiplier.
func (c *Combatant) swingMultiplier(swing int) float64 {
	prog := c.Character.Attack.SwingProgression
	if len(prog) == 0 {
		return 1
	}
	return prog[swing%len(prog)]
}

// protectionAgainst returns the flat protection relevant to the
// attacker's damage type.
func (c *Combatant) protectionAgainst(t model.DamageType) float64 {
	if t == model.DamageMagical {
		return c.magProt
	}
	return c.physProt
}

// rules returns the combatant's effect rules matching trigger and kind.
func (c *Combatant) rules(trigger model.EffectTrigger, kind model.EffectKind) []model.EffectRule {
	var out []model.EffectRule
	for _, it := range c.Items {
		for _, r := range it.Effects {
			if r.Trigger == trigger && r.Kind == kind {
				out = append(out, r)
			}
		}
	}
	return out
}

// eachRule calls fn for every effect rule with the given trigger. The
// index identifies the rule within its item for cooldown bookkeeping.
func (c *Combatant) eachRule(trigger model.EffectTrigger, fn func(itemID int32, idx int, r model.EffectRule)) {
	for _, it := range c.Items {
		for i, r := range it.Effects {
			if r.Trigger == trigger {
				fn(it.ID, i, r)
			}
		}
	}
}

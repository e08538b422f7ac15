package stats

import (
	"math"

	"github.com/avessi/godforge/internal/model"
)

// capEpsilon absorbs float accumulation noise in cap comparisons, so a
// build sitting exactly on a cap stays legal.
const capEpsilon = 5e-3

// exceeds reports whether value is over limit beyond the tolerance.
func exceeds(value, limit float64) bool {
	return value-limit > capEpsilon
}

// CapResult описывает исход проверки капов.
type CapResult struct {
	// Rejected is set when a hard-capped attribute exceeded its cap.
	Rejected bool
	// Attribute that caused the rejection.
	Violated model.Attribute
}

// Exemptions — атрибуты, которым пассивы предметов разрешают превышать
// жёсткий кап (симулятор сам обрабатывает превышение).
type Exemptions struct {
	AttackSpeed bool
	Penetration bool
}

// ExemptionsOf derives cap exemptions from the items' effect rules.
func ExemptionsOf(items []*model.Item) Exemptions {
	var ex Exemptions
	for _, it := range items {
		for _, rule := range it.Effects {
			switch rule.Kind {
			case model.EffectSpeedToPower:
				ex.AttackSpeed = true
			case model.EffectPenOvercap:
				ex.Penetration = true
			}
		}
	}
	return ex
}

// ApplyCaps checks every capped attribute's effective value at the
// reference level and either rejects the build (hard caps) or clamps the
// overflow into stats.Overcap (soft caps). The stats are mutated in place
// when clamping.
//
// Effective value rules:
//   - attack speed: the character's innate reference-level speed is the
//     multiplicative base, effective = innate * (1 + percent);
//   - penetration: no innate value is added;
//   - cooldown reduction: warriors add their innate reduction;
//   - everything else: contribution + innate reference-level value.
func ApplyCaps(ch *model.Character, agg *model.AggregatedStats, ex Exemptions) CapResult {
	for _, attr := range agg.Attributes() {
		if r := checkFlat(ch, agg, attr, ex); r.Rejected {
			return r
		}
		if r := checkPercent(ch, agg, attr, ex); r.Rejected {
			return r
		}
	}
	return CapResult{}
}

func checkFlat(ch *model.Character, agg *model.AggregatedStats, attr model.Attribute, ex Exemptions) CapResult {
	cap, ok := attr.FlatCap()
	if !ok {
		return CapResult{}
	}

	effective := agg.FlatOf(attr)
	switch attr {
	case model.AttrAttackSpeed:
		// Attack speed items grant percent; the flat cap bounds the
		// multiplied result.
		base := ch.StatAt(model.AttrAttackSpeed, ReferenceLevel)
		effective = base + base*agg.PercentOf(attr)
	case model.AttrMagicalPenetration, model.AttrPhysicalPenetration:
		// No innate penetration.
	default:
		effective += ch.StatAt(attr, ReferenceLevel)
	}

	if !exceeds(effective, cap) {
		return CapResult{}
	}
	if attr == model.AttrAttackSpeed {
		if ex.AttackSpeed {
			agg.Overcap[attr] = effective - cap
			return CapResult{}
		}
		return CapResult{Rejected: true, Violated: attr}
	}
	if attr.Hard() {
		if ex.Penetration &&
			(attr == model.AttrMagicalPenetration || attr == model.AttrPhysicalPenetration) {
			agg.Overcap[attr] += effective - cap
			return CapResult{}
		}
		return CapResult{Rejected: true, Violated: attr}
	}

	// Soft cap: clamp and record the excess.
	over := effective - cap
	agg.Overcap[attr] += over
	agg.Flat[attr] -= over
	return CapResult{}
}

func checkPercent(ch *model.Character, agg *model.AggregatedStats, attr model.Attribute, ex Exemptions) CapResult {
	if attr == model.AttrAttackSpeed {
		return CapResult{} // handled as a flat effective value
	}
	cap, ok := attr.PercentCap()
	if !ok {
		return CapResult{}
	}

	value := agg.PercentOf(attr)
	switch attr {
	case model.AttrCooldownReduction:
		if ch.Role == model.RoleWarrior {
			value += ch.StatAt(attr, ReferenceLevel)
		}
	case model.AttrCrowdControlReduction:
		if ch.Role == model.RoleGuardian {
			value += ch.StatAt(attr, ReferenceLevel)
		}
	}

	if !exceeds(value, cap) {
		return CapResult{}
	}
	if attr.Hard() {
		if ex.Penetration &&
			(attr == model.AttrMagicalPenetration || attr == model.AttrPhysicalPenetration) {
			agg.Overcap[attr] += value - cap
			return CapResult{}
		}
		return CapResult{Rejected: true, Violated: attr}
	}

	over := value - cap
	agg.Overcap[attr] += over
	agg.Percent[attr] -= over
	return CapResult{}
}

// Legal aggregates the items for the character and checks the caps in
// one call. The boolean is false when a hard cap rejected the build;
// the returned stats are then partial and must be discarded.
func Legal(ch *model.Character, items []*model.Item) (*model.AggregatedStats, bool) {
	agg := Aggregate(ch, items)
	res := ApplyCaps(ch, agg, ExemptionsOf(items))
	return agg, !res.Rejected
}

// OvercappedSpeed returns how far the build's effective attack speed at
// the given level is beyond the cap without clamping, for cap-crossing
// combat bonuses.
func OvercappedSpeed(ch *model.Character, agg *model.AggregatedStats, level int32) float64 {
	cap, _ := model.AttrAttackSpeed.FlatCap()
	base := ch.StatAt(model.AttrAttackSpeed, level)
	effective := base + base*agg.PercentOf(model.AttrAttackSpeed)
	return math.Max(0, effective-cap)
}

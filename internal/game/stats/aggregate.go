// Package stats aggregates item contributions into per-character stats
// and enforces stacking caps.
package stats

import (
	"github.com/avessi/godforge/internal/model"
)

// ReferenceLevel — уровень, на котором проверяются капы и считаются
// эффективные значения. Соответствует максимальному уровню персонажа.
const ReferenceLevel int32 = 20

// Aggregate sums flat/percent contributions of the items per attribute,
// applying the merge rules before any other component sees the result:
//
//  1. generic penetration resolves to physical or magical by the
//     character's damage type;
//  2. the combined HP5&MP5 property splits into both constituents;
//  3. for characters whose secondary resource is not mana, mana and MP5
//     contributions redirect to health and HP5;
//  4. properties whose affinity differs from the character's type are
//     dropped entirely, not merely zero-weighted;
//  5. physical crit chance folds into the generic crit attribute.
//
// The bespoke percent-protections and percent-maximum-health properties
// multiply the already-summed flat protections/health afterwards.
func Aggregate(ch *model.Character, items []*model.Item) *model.AggregatedStats {
	agg := model.NewAggregatedStats()

	protectionsPct := 0.0
	maxHealthPct := 0.0

	for _, it := range items {
		for _, p := range it.Properties {
			attr := p.Attribute

			if aff := attr.Affinity(); aff != model.AffinityNone && aff != ch.Type.Affinity() {
				continue
			}

			switch attr {
			case model.AttrProtectionsPct:
				protectionsPct += p.Percent
				continue
			case model.AttrMaximumHealthPct:
				maxHealthPct += p.Percent
				continue
			case model.AttrHP5AndMP5:
				agg.Add(model.AttrHP5, p.Flat, p.Percent)
				agg.Add(redirectMana(ch, model.AttrMP5), p.Flat, p.Percent)
				continue
			case model.AttrPhysicalCritChance:
				attr = model.AttrCritChance
			case model.AttrPenetration:
				if ch.Type == model.DamageMagical {
					attr = model.AttrMagicalPenetration
				} else {
					attr = model.AttrPhysicalPenetration
				}
			case model.AttrMana, model.AttrMP5:
				attr = redirectMana(ch, attr)
			}

			agg.Add(attr, p.Flat, p.Percent)
		}
	}

	if protectionsPct != 0 {
		agg.Flat[model.AttrMagicalProtection] *= 1 + protectionsPct
		agg.Flat[model.AttrPhysicalProtection] *= 1 + protectionsPct
	}
	if maxHealthPct != 0 {
		agg.Flat[model.AttrHealth] *= 1 + maxHealthPct
	}

	return agg
}

// redirectMana maps mana attributes to their health counterparts for
// characters without a mana pool.
func redirectMana(ch *model.Character, attr model.Attribute) model.Attribute {
	if ch.UsesMana {
		return attr
	}
	switch attr {
	case model.AttrMana:
		return model.AttrHealth
	case model.AttrMP5:
		return model.AttrHP5
	default:
		return attr
	}
}

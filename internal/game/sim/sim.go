package sim

import (
	"log/slog"
	"math/rand/v2"

	"github.com/avessi/godforge/internal/model"
)

const (
	defaultMaxSwings  = 3000
	defaultMaxSeconds = 300.0
)

// Simulator — дискретная симуляция обмена автоатаками.
// Источник случайности передаётся явно, чтобы прогоны были воспроизводимы.
type Simulator struct {
	rng *rand.Rand

	// MaxSwings and MaxSeconds bound a single run. A build whose damage
	// per cycle never outpaces regeneration hits the ceiling and is
	// reported as unable to kill instead of looping forever.
	MaxSwings  int
	MaxSeconds float64
}

func New(rng *rand.Rand) *Simulator {
	return &Simulator{
		rng:        rng,
		MaxSwings:  defaultMaxSwings,
		MaxSeconds: defaultMaxSeconds,
	}
}

// TTK runs basic-attack swings from the attacker against the defender
// until the defender's health reaches zero and returns the elapsed
// seconds. Returns ErrCannotKill when the ceiling is hit first.
func (s *Simulator) TTK(att, def *Combatant) (float64, error) {
	attState := newCombatState(att)
	defState := newCombatState(def)

	// Crit suppression from defender items is flat for the whole run.
	var critSuppress, bonusSuppress float64
	for _, r := range def.rules(model.TriggerPassive, model.EffectCritSuppress) {
		critSuppress += r.Value
		bonusSuppress += r.Scaling
	}

	var (
		now       float64
		sincePrev float64
		swing     int
	)

	for defState.health > 0 {
		if swing >= s.MaxSwings || now > s.MaxSeconds {
			slog.Debug("simulation ceiling reached",
				"attacker", att.Character.Name,
				"defender", def.Character.Name,
				"swings", swing,
				"elapsed", now)
			return 0, model.ErrCannotKill
		}

		// 1. Instantaneous attack speed from base plus live modifiers.
		effSpeed := att.attackSpeed + attState.sumActive(model.EffectOnHitSpeed)
		if effSpeed < 0.1 {
			effSpeed = 0.1
		}

		// 2. Percent protection reduction from live shred stacks.
		pctProtRed := defState.sumActive(model.EffectShredStack)

		// 3. Expire elapsed effects. Steps 1 and 2 deliberately read the
		// pre-expiry values.
		attState.expire(now)
		defState.expire(now)

		// 4. Crit roll.
		critMult := 1.0
		if att.Character.CanCrit() {
			chance := att.critChance - critSuppress
			if chance > 0 && s.rng.Float64() < chance {
				critMult = att.critBonus + attState.sumActive(model.EffectOnCritBonus) - bonusSuppress
				if critMult < 1 {
					critMult = 1
				}
			}
		}
		crit := critMult > 1

		// 5. Raw basic-attack damage.
		raw := critMult * att.damageMultiplier(swing) * att.hitDamage(&att.Character.Attack.HitParams)
		if second := att.Character.Attack.SecondHit; second != nil {
			raw += critMult * att.hitDamage(second)
		}

		// 6. Health-scaling bonus damage.
		att.eachRule(model.TriggerOnHit, func(itemID int32, idx int, r model.EffectRule) {
			if r.Kind != model.EffectExecute {
				return
			}
			if r.Threshold > 0 && defState.health/def.maxHealth > r.Threshold {
				return
			}
			if !attState.offCooldown(ruleKey(itemID, idx), r.Cooldown, now) {
				return
			}
			raw += r.Value * defState.health
		})

		// 7. Mitigation. The operator ordering inside effectiveProtection
		// is load-bearing: percent reduction, flat reduction, percent
		// penetration, flat penetration.
		prot := def.protectionAgainst(att.Character.Type)
		const flatProtRed = 0
		effProt := (prot*(1-pctProtRed)-flatProtRed)*(1-att.penPercent) - att.penFlat
		if effProt < 0 {
			effProt = 0
		}
		pctMit := defState.sumActive(model.EffectThresholdMitigation)
		mitigated := 100 * (raw - def.flatReduce) * (1 - pctMit) / (100 + effProt)
		if mitigated < 0 {
			mitigated = 0
		}

		// 8. Damage, then regeneration prorated by time since last swing.
		defState.health -= mitigated
		defState.heal(def.hp5 / 5 * sincePrev)

		// 9. Trigger and refresh stacking effects.
		s.fireOnHit(att, attState, defState, crit, now)
		s.fireOnDefend(def, defState, now)

		// 10. Advance the clock.
		swingTime := 1 / effSpeed * att.swingMultiplier(swing)
		now += swingTime
		sincePrev = swingTime
		swing++
	}

	return now, nil
}

// fireOnHit applies the attacker's on-hit and on-crit rules after a
// landed swing.
func (s *Simulator) fireOnHit(att *Combatant, attState, defState *combatState, crit bool, now float64) {
	att.eachRule(model.TriggerOnHit, func(itemID int32, idx int, r model.EffectRule) {
		key := ruleKey(itemID, idx)
		switch r.Kind {
		case model.EffectShredStack:
			defState.addStack(r, now)
		case model.EffectOnHitSpeed:
			attState.addStack(r, now)
		case model.EffectStackHeal:
			attState.hitCounters[key]++
			if r.MaxStacks > 0 && attState.hitCounters[key] >= int(r.MaxStacks) {
				attState.hitCounters[key] = 0
				if attState.offCooldown(key, r.Cooldown, now) {
					attState.heal(r.Value + r.Scaling*att.power)
				}
			}
		}
	})
	if crit {
		att.eachRule(model.TriggerOnCrit, func(itemID int32, idx int, r model.EffectRule) {
			if r.Kind == model.EffectOnCritBonus {
				attState.addStack(r, now)
			}
		})
	}
}

// fireOnDefend applies the defender's reactive rules after taking a hit.
func (s *Simulator) fireOnDefend(def *Combatant, defState *combatState, now float64) {
	def.eachRule(model.TriggerOnDefend, func(itemID int32, idx int, r model.EffectRule) {
		key := ruleKey(itemID, idx)
		switch r.Kind {
		case model.EffectThresholdMitigation:
			if defState.health <= 0 || defState.health/def.maxHealth > r.Threshold {
				return
			}
			if !defState.offCooldown(key, r.Cooldown, now) {
				return
			}
			defState.addStack(r, now)
		case model.EffectStackHeal:
			defState.hitCounters[key]++
			if r.MaxStacks > 0 && defState.hitCounters[key] >= int(r.MaxStacks) {
				defState.hitCounters[key] = 0
				if defState.offCooldown(key, r.Cooldown, now) {
					defState.heal(r.Value)
				}
			}
		}
	})
}

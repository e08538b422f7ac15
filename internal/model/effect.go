package model

// EffectTrigger — момент срабатывания пассивного правила предмета.
type EffectTrigger int32

const (
	TriggerPassive  EffectTrigger = iota // always in force
	TriggerOnHit                         // attacker lands a basic attack
	TriggerOnCrit                        // attacker lands a critical hit
	TriggerOnDefend                      // owner is hit by a basic attack
)

// EffectKind — вид пассивного эффекта предмета.
//
// Правила объявляются в каталоге и интерпретируются только симулятором
// боя: никаких ветвлений по item ID в самом цикле.
type EffectKind int32

const (
	// EffectExecute deals bonus damage equal to Value percent of the
	// defender's current health on hit. Threshold, when nonzero, limits
	// the effect to defenders below that health fraction.
	EffectExecute EffectKind = iota

	// EffectShredStack applies a stacking percent protection reduction
	// (Value per stack, up to MaxStacks, each with its own Duration).
	EffectShredStack

	// EffectSpeedToPower converts attack speed beyond the cap into power
	// at Value power per 1% of overcapped speed.
	EffectSpeedToPower

	// EffectStackHeal heals the owner for Value when an on-hit stack
	// counter reaches MaxStacks, then resets the counter. Cooldown gates
	// re-triggering.
	EffectStackHeal

	// EffectCritSuppress reduces the attacker's crit chance by Value and
	// crit bonus damage by Scaling while the owner defends.
	EffectCritSuppress

	// EffectThresholdMitigation grants Value percent mitigation while the
	// owner is below Threshold health fraction, for Duration seconds,
	// gated by Cooldown.
	EffectThresholdMitigation

	// EffectOnHitSpeed grants a stacking Value attack-speed bonus for
	// Duration seconds per stack, up to MaxStacks.
	EffectOnHitSpeed

	// EffectOnCritBonus grants Value bonus crit damage multiplier for
	// Duration seconds after a critical hit.
	EffectOnCritBonus

	// EffectPenOvercap lifts the hard penetration caps for the build.
	// The excess is recorded as overcap and the aggregated penetration
	// keeps its full value.
	EffectPenOvercap
)

// EffectRule — одно декларативное правило пассивного эффекта.
// Нулевые поля означают "не применимо" для данного вида.
type EffectRule struct {
	Trigger   EffectTrigger
	Kind      EffectKind
	Value     float64
	Scaling   float64
	Duration  float64 // seconds a stack/buff lives
	Cooldown  float64 // seconds before the rule may re-trigger
	MaxStacks int32
	Threshold float64 // health fraction, 0..1
}

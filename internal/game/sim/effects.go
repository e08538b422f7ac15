package sim

import "github.com/avessi/godforge/internal/model"

// effectInstance — один активный экземпляр временного эффекта.
// Каждый стак живёт по собственному таймеру.
type effectInstance struct {
	kind      model.EffectKind
	value     float64
	expiresAt float64
}

// combatState tracks the per-side mutable state of a running simulation.
type combatState struct {
	c *Combatant

	health float64

	// Active timed effects, each stack with its own expiry.
	active []effectInstance

	// Last trigger time per item rule, for cooldown gating.
	// Key is itemID<<8 | rule index within the item.
	lastFired map[int64]float64

	// Accumulated counters for stack-driven rules (heal per N hits).
	hitCounters map[int64]int
}

func newCombatState(c *Combatant) *combatState {
	return &combatState{
		c:           c,
		health:      c.maxHealth,
		lastFired:   make(map[int64]float64),
		hitCounters: make(map[int64]int),
	}
}

// sumActive returns the summed value of non-expired effects of the kind.
// Expired instances still count until expire() removes them, which the
// swing procedure does at a fixed point in its order.
func (s *combatState) sumActive(kind model.EffectKind) float64 {
	var sum float64
	for _, e := range s.active {
		if e.kind == kind {
			sum += e.value
		}
	}
	return sum
}

// countActive returns the number of live stacks of the kind.
func (s *combatState) countActive(kind model.EffectKind) int {
	var n int
	for _, e := range s.active {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// expire drops every instance whose timer has elapsed by now.
func (s *combatState) expire(now float64) {
	kept := s.active[:0]
	for _, e := range s.active {
		if e.expiresAt > now {
			kept = append(kept, e)
		}
	}
	s.active = kept
}

// addStack appends an instance of the rule, refreshing the oldest stack
// instead when the rule's stack limit is reached.
func (s *combatState) addStack(r model.EffectRule, now float64) {
	inst := effectInstance{kind: r.Kind, value: r.Value, expiresAt: now + r.Duration}
	if r.MaxStacks > 0 && s.countActive(r.Kind) >= int(r.MaxStacks) {
		oldest := -1
		for i, e := range s.active {
			if e.kind != r.Kind {
				continue
			}
			if oldest < 0 || e.expiresAt < s.active[oldest].expiresAt {
				oldest = i
			}
		}
		if oldest >= 0 {
			s.active[oldest] = inst
			return
		}
	}
	s.active = append(s.active, inst)
}

// offCooldown reports whether the rule may fire at now and records the
// firing time when it may.
func (s *combatState) offCooldown(key int64, cooldown, now float64) bool {
	if cooldown > 0 {
		if last, ok := s.lastFired[key]; ok && now-last < cooldown {
			return false
		}
	}
	s.lastFired[key] = now
	return true
}

// heal restores health up to the maximum.
func (s *combatState) heal(amount float64) {
	s.health += amount
	if s.health > s.c.maxHealth {
		s.health = s.c.maxHealth
	}
}

func ruleKey(itemID int32, idx int) int64 {
	return int64(itemID)<<8 | int64(idx)
}

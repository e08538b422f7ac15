package model

// Role — роль персонажа. Закрытый набор из каталога.
type Role int32

const (
	RoleAssassin Role = iota
	RoleGuardian
	RoleHunter
	RoleMage
	RoleWarrior
)

var roleNames = map[string]Role{
	"assassin": RoleAssassin,
	"guardian": RoleGuardian,
	"hunter":   RoleHunter,
	"mage":     RoleMage,
	"warrior":  RoleWarrior,
}

// ParseRole resolves a catalog role name.
func ParseRole(name string) (Role, bool) {
	r, ok := roleNames[name]
	return r, ok
}

// String returns the catalog spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleAssassin:
		return "assassin"
	case RoleGuardian:
		return "guardian"
	case RoleHunter:
		return "hunter"
	case RoleMage:
		return "mage"
	case RoleWarrior:
		return "warrior"
	default:
		return "unknown"
	}
}

// DamageType — физический или магический тип урона персонажа.
type DamageType int32

const (
	DamagePhysical DamageType = iota
	DamageMagical
)

// Affinity maps the damage type to the matching attribute affinity.
func (t DamageType) Affinity() TypeAffinity {
	if t == DamageMagical {
		return AffinityMagical
	}
	return AffinityPhysical
}

// BaseStat — базовое значение характеристики и её прирост за уровень.
type BaseStat struct {
	Base     float64
	PerLevel float64
}

// HitParams — параметры одного удара базовой атаки.
// Damage at level L with power P: Base + PerLevel*L + Scaling*P.
type HitParams struct {
	Base     float64
	PerLevel float64
	Scaling  float64
}

// BasicAttack описывает базовую атаку персонажа.
//
// Progression multipliers model attack chains (e.g. 1x/1x/1.5x swings):
// DamageProgression[i] scales the damage of swing i in the cycle,
// SwingProgression[i] scales its swing time. Empty slices mean a flat 1x.
type BasicAttack struct {
	HitParams

	// Second concurrent hit instance with independent parameters.
	// Only one catalog character has this (front/back arrow).
	SecondHit *HitParams

	DamageProgression []float64
	SwingProgression  []float64
}

// Character — персонаж из каталога. Неизменяем после загрузки.
type Character struct {
	ID   int32
	Name string
	Role Role
	Type DamageType

	Stats map[Attribute]BaseStat

	Attack BasicAttack

	// UsesMana is false for characters whose secondary resource is not
	// mana; their mana and MP5 item contributions redirect to health/HP5.
	UsesMana bool

	// SignatureRootID, when nonzero, names an upgrade chain whose member
	// is mandatory in every build: such characters build 5 regular items
	// plus one item from this chain.
	SignatureRootID int32

	// CritCapable marks the one non-physical special case that can
	// critically strike. Physical characters always can.
	CritCapable bool
}

// StatAt returns the character's innate value of attr at the given level.
// Unknown attributes are 0: items are the only source for them.
func (c *Character) StatAt(attr Attribute, level int32) float64 {
	s, ok := c.Stats[attr]
	if !ok {
		return 0
	}
	return s.Base + s.PerLevel*float64(level)
}

// CanCrit reports whether the character's basic attacks can critically
// strike.
func (c *Character) CanCrit() bool {
	return c.Type == DamagePhysical || c.CritCapable
}

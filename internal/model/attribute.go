package model

// Attribute — вид характеристики предмета или персонажа.
// Значения соответствуют строкам из каталога game-data API.
type Attribute int32

const (
	AttrNone Attribute = iota
	AttrAttackSpeed
	AttrBasicAttackDamage
	AttrCooldownReduction
	AttrCritChance
	AttrCrowdControlReduction
	AttrHP5
	AttrHealth
	AttrMP5
	AttrMagicalLifesteal
	AttrMagicalPenetration
	AttrMagicalPower
	AttrMagicalProtection
	AttrMana
	AttrMovementSpeed
	AttrPhysicalLifesteal
	AttrPhysicalPenetration
	AttrPhysicalPower
	AttrPhysicalProtection

	// Bespoke attributes: show up on only a handful of items.
	AttrDamageReduction
	AttrHP5AndMP5
	AttrMaximumHealthPct
	AttrPenetration // generic, resolves by character damage type
	AttrPhysicalCritChance
	AttrProtectionsPct

	attrCount
)

// TypeAffinity — привязка атрибута к типу урона персонажа.
type TypeAffinity int32

const (
	AffinityNone TypeAffinity = iota
	AffinityPhysical
	AffinityMagical
)

var attributeNames = [attrCount]string{
	AttrNone:                  "none",
	AttrAttackSpeed:           "attack speed",
	AttrBasicAttackDamage:     "basic attack damage",
	AttrCooldownReduction:     "cooldown reduction",
	AttrCritChance:            "critical strike chance",
	AttrCrowdControlReduction: "crowd control reduction",
	AttrHP5:                   "hp5",
	AttrHealth:                "health",
	AttrMP5:                   "mp5",
	AttrMagicalLifesteal:      "magical lifesteal",
	AttrMagicalPenetration:    "magical penetration",
	AttrMagicalPower:          "magical power",
	AttrMagicalProtection:     "magical protection",
	AttrMana:                  "mana",
	AttrMovementSpeed:         "movement speed",
	AttrPhysicalLifesteal:     "physical lifesteal",
	AttrPhysicalPenetration:   "physical penetration",
	AttrPhysicalPower:         "physical power",
	AttrPhysicalProtection:    "physical protection",
	AttrDamageReduction:       "damage reduction",
	AttrHP5AndMP5:             "hp5 & mp5",
	AttrMaximumHealthPct:      "maximum health",
	AttrPenetration:           "penetration",
	AttrPhysicalCritChance:    "physical critical strike chance",
	AttrProtectionsPct:        "protections",
}

// String returns the catalog spelling of the attribute.
func (a Attribute) String() string {
	if a < 0 || a >= attrCount {
		return "unknown"
	}
	return attributeNames[a]
}

// ParseAttribute resolves a catalog spelling (or a known alias) to an
// Attribute. Returns AttrNone, false for unrecognized names.
func ParseAttribute(name string) (Attribute, bool) {
	switch name {
	case "magical protections":
		return AttrMagicalProtection, true
	case "ccr":
		return AttrCrowdControlReduction, true
	}
	for a := Attribute(1); a < attrCount; a++ {
		if attributeNames[a] == name {
			return a, true
		}
	}
	return AttrNone, false
}

// Affinity returns the damage-type affinity of the attribute.
// Protections are affinity-neutral: a physical character still benefits
// from magical protection.
func (a Attribute) Affinity() TypeAffinity {
	switch a {
	case AttrMagicalLifesteal, AttrMagicalPenetration, AttrMagicalPower:
		return AffinityMagical
	case AttrPhysicalLifesteal, AttrPhysicalPenetration, AttrPhysicalPower,
		AttrPhysicalCritChance:
		return AffinityPhysical
	default:
		return AffinityNone
	}
}

// Flat contribution caps, post-aggregation, including the character's own
// innate value at the reference level.
var flatCaps = map[Attribute]float64{
	AttrAttackSpeed:         2.5,
	AttrBasicAttackDamage:   10000,
	AttrMagicalPenetration:  50,
	AttrPhysicalPenetration: 50,
	AttrMagicalProtection:   325,
	AttrPhysicalProtection:  325,
	AttrHealth:              5500,
	AttrHP5:                 100,
	AttrMP5:                 100,
	AttrMovementSpeed:       1000,
	AttrMana:                4000,
	AttrMagicalPower:        900,
	AttrPhysicalPower:       400,
	// Only one item grants damage reduction, and it grants +5.
	AttrDamageReduction: 5,
}

// Percent contribution caps.
var percentCaps = map[Attribute]float64{
	AttrMagicalLifesteal:      0.65,
	AttrPhysicalLifesteal:     1,
	AttrMagicalPenetration:    0.40,
	AttrPhysicalPenetration:   0.40,
	AttrCritChance:            1,
	AttrCrowdControlReduction: 0.40,
	AttrCooldownReduction:     0.40,
}

// FlatCap returns the flat cap for the attribute, if it has one.
func (a Attribute) FlatCap() (float64, bool) {
	cap, ok := flatCaps[a]
	return cap, ok
}

// PercentCap returns the percent cap for the attribute, if it has one.
func (a Attribute) PercentCap() (float64, bool) {
	cap, ok := percentCaps[a]
	return cap, ok
}

// Hard reports whether exceeding this attribute's cap makes a build
// illegal. Overflow on soft-capped attributes is clamped instead.
func (a Attribute) Hard() bool {
	switch a {
	case AttrAttackSpeed,
		AttrMagicalLifesteal, AttrPhysicalLifesteal,
		AttrCritChance,
		AttrCooldownReduction,
		AttrCrowdControlReduction,
		AttrMagicalPenetration, AttrPhysicalPenetration:
		return true
	default:
		return false
	}
}

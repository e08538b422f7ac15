package model

// ItemKind — категория предмета из каталога.
type ItemKind int32

const (
	KindEquipment ItemKind = iota // passive equippable item
	KindRelic                     // active-use equipment
	KindConsumable
)

// Property — вклад предмета в один атрибут. Flat и Percent независимы:
// предмет может давать и то и другое для одного атрибута.
type Property struct {
	Attribute Attribute
	Flat      float64
	Percent   float64
}

// Item — предмет из каталога. Неизменяем после загрузки.
//
// ParentID связывает цепочку апгрейдов: каждый предмет имеет не более
// одного родителя. RootID и ChainDepth предвычисляются при построении
// каталога, чтобы не ходить по цепочке на каждый запрос.
type Item struct {
	ID       int32
	Name     string
	Tier     int32 // 1..4
	ParentID int32 // 0 = chain root
	Price    int32
	Kind     ItemKind

	Starter bool
	Glyph   bool

	// Roles that may not equip this item.
	RestrictedRoles []Role

	Properties []Property

	// Special passive behavior, consumed only by the combat simulator.
	Effects []EffectRule

	// Precomputed by the catalog.
	RootID     int32
	ChainDepth int32
}

// IsEvolved reports whether the item is a tier-4 evolution that is not a
// glyph (glyphs are the alternate upgrade path).
func (it *Item) IsEvolved() bool {
	return it.Tier == 4 && !it.Glyph
}

// RestrictedFor reports whether the item may not be equipped by the role.
func (it *Item) RestrictedFor(role Role) bool {
	for _, r := range it.RestrictedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Fits reports whether the item grants anything useful to a character of
// the given damage type: at least one property matches the type, or no
// property has an affinity at all.
func (it *Item) Fits(t DamageType) bool {
	neutral := true
	for _, p := range it.Properties {
		aff := p.Attribute.Affinity()
		if aff == AffinityNone {
			continue
		}
		neutral = false
		if aff == t.Affinity() {
			return true
		}
	}
	return neutral
}

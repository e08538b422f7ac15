package score

import (
	"github.com/avessi/godforge/internal/model"
)

// PriorityWeight — вес, принудительно назначаемый приоритетному атрибуту.
// Заметно больше любого ролевого веса по умолчанию.
const PriorityWeight = 15

// Weights — знаковые веса атрибутов для одной роли. Отрицательный вес
// штрафует предметы, тянущие сборку не в ту сторону.
type Weights map[model.Attribute]float64

// roleWeights — веса по умолчанию для каждой роли. Атрибуты чужого типа
// урона сюда не входят: их отбрасывает агрегатор раньше скоринга.
//
// Значения подобраны вручную и не выводятся из формулы; не стоит
// ожидать, что они перенесутся на новые атрибуты без перенастройки.
var roleWeights = map[model.Role]Weights{
	model.RoleAssassin: {
		model.AttrAttackSpeed:           0.5,
		model.AttrBasicAttackDamage:     1,
		model.AttrCooldownReduction:     5,
		model.AttrCritChance:            -1,
		model.AttrCrowdControlReduction: 1,
		model.AttrDamageReduction:       -1,
		model.AttrHP5:                   1,
		model.AttrHealth:                1,
		model.AttrMP5:                   1,
		model.AttrMagicalLifesteal:      -0.5,
		model.AttrMagicalProtection:     1,
		model.AttrMana:                  1,
		model.AttrMovementSpeed:         1,
		model.AttrPhysicalLifesteal:     -0.5,
		model.AttrMagicalPenetration:    5,
		model.AttrPhysicalPenetration:   5,
		model.AttrMagicalPower:          5,
		model.AttrPhysicalPower:         5,
		model.AttrPhysicalProtection:    1,
	},
	model.RoleGuardian: {
		model.AttrAttackSpeed:           -1,
		model.AttrBasicAttackDamage:     -1,
		model.AttrCooldownReduction:     5,
		model.AttrCrowdControlReduction: 5,
		model.AttrDamageReduction:       1,
		model.AttrHP5:                   1,
		model.AttrHealth:                5,
		model.AttrMP5:                   1,
		model.AttrMagicalLifesteal:      -1,
		model.AttrMagicalPenetration:    -1,
		model.AttrPhysicalPenetration:   -1,
		model.AttrMagicalPower:          -1,
		model.AttrPhysicalPower:         -1,
		model.AttrMagicalProtection:     5,
		model.AttrMana:                  1,
		model.AttrMovementSpeed:         1,
		model.AttrPhysicalProtection:    5,
	},
	model.RoleHunter: {
		model.AttrAttackSpeed:           5,
		model.AttrBasicAttackDamage:     1,
		model.AttrCooldownReduction:     1,
		model.AttrCritChance:            5,
		model.AttrCrowdControlReduction: 0.1,
		model.AttrDamageReduction:       0.1,
		model.AttrHP5:                   0.5,
		model.AttrHealth:                0.5,
		model.AttrMP5:                   0.5,
		model.AttrMagicalProtection:     0.1,
		model.AttrMana:                  0.5,
		model.AttrMovementSpeed:         0.5,
		model.AttrMagicalLifesteal:      5,
		model.AttrPhysicalLifesteal:     5,
		model.AttrMagicalPenetration:    5,
		model.AttrPhysicalPenetration:   5,
		model.AttrMagicalPower:          5,
		model.AttrPhysicalPower:         5,
		model.AttrPhysicalProtection:    0.1,
	},
	model.RoleMage: {
		model.AttrAttackSpeed:           0.1,
		model.AttrBasicAttackDamage:     0.1,
		model.AttrCooldownReduction:     5,
		model.AttrCrowdControlReduction: 0.5,
		model.AttrDamageReduction:       0.1,
		model.AttrHP5:                   1,
		model.AttrHealth:                1,
		model.AttrMP5:                   1,
		model.AttrMagicalLifesteal:      1,
		model.AttrPhysicalLifesteal:     1,
		model.AttrMagicalPenetration:    5,
		model.AttrPhysicalPenetration:   5,
		model.AttrMagicalPower:          5,
		model.AttrPhysicalPower:         5,
		model.AttrMagicalProtection:     0.1,
		model.AttrMana:                  1,
		model.AttrMovementSpeed:         0.5,
		model.AttrPhysicalProtection:    0.1,
	},
	model.RoleWarrior: {
		model.AttrAttackSpeed:           0.5,
		model.AttrBasicAttackDamage:     0.1,
		model.AttrCooldownReduction:     3,
		model.AttrCritChance:            0.1,
		model.AttrCrowdControlReduction: 2,
		model.AttrDamageReduction:       1,
		model.AttrHP5:                   1,
		model.AttrHealth:                5,
		model.AttrMP5:                   1,
		model.AttrMagicalProtection:     5,
		model.AttrMana:                  1,
		model.AttrMovementSpeed:         1,
		model.AttrMagicalLifesteal:      1,
		model.AttrPhysicalLifesteal:     1,
		model.AttrMagicalPenetration:    1,
		model.AttrPhysicalPenetration:   1,
		model.AttrMagicalPower:          5,
		model.AttrPhysicalPower:         5,
		model.AttrPhysicalProtection:    5,
	},
}

// aliases — разговорные имена, разворачивающиеся в наборы атрибутов.
var aliases = map[string][]model.Attribute{
	"crit":        {model.AttrCritChance, model.AttrPhysicalCritChance},
	"ccr":         {model.AttrCrowdControlReduction},
	"cdr":         {model.AttrCooldownReduction},
	"power":       {model.AttrMagicalPower, model.AttrPhysicalPower},
	"speed":       {model.AttrMovementSpeed},
	"lifesteal":   {model.AttrMagicalLifesteal, model.AttrPhysicalLifesteal},
	"protection":  {model.AttrMagicalProtection, model.AttrPhysicalProtection},
	"prot":        {model.AttrMagicalProtection, model.AttrPhysicalProtection},
	"prots":       {model.AttrMagicalProtection, model.AttrPhysicalProtection},
	"pen":         {model.AttrMagicalPenetration, model.AttrPhysicalPenetration},
	"penetration": {model.AttrMagicalPenetration, model.AttrPhysicalPenetration},
}

// RoleWeights returns a copy of the default weight table for the role.
func RoleWeights(role model.Role) Weights {
	defaults := roleWeights[role]
	w := make(Weights, len(defaults))
	for attr, v := range defaults {
		w[attr] = v
	}
	return w
}

// WithPriority returns the role defaults with the named stat (or alias)
// forced to PriorityWeight. Attributes whose affinity contradicts the
// character's damage type yield *model.InvalidStatError.
func WithPriority(ch *model.Character, stat string) (Weights, error) {
	attrs, ok := aliases[stat]
	if !ok {
		attr, ok := model.ParseAttribute(stat)
		if !ok {
			return nil, &model.InvalidStatError{Stat: stat, Character: ch.Name}
		}
		attrs = []model.Attribute{attr}
	}

	w := RoleWeights(ch.Role)
	matched := false
	for _, attr := range attrs {
		if aff := attr.Affinity(); aff != model.AffinityNone && aff != ch.Type.Affinity() {
			continue
		}
		w[attr] = PriorityWeight
		matched = true
	}
	if !matched {
		return nil, &model.InvalidStatError{Stat: stat, Character: ch.Name}
	}
	return w, nil
}

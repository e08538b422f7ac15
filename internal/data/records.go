package data

import (
	"fmt"

	"github.com/avessi/godforge/internal/model"
)

// Кэш каталога хранится в JSON. Записи здесь повторяют формат файла и
// переводятся в модель с проверкой всех имён.

type statRecord struct {
	Base     float64 `json:"base"`
	PerLevel float64 `json:"per_level"`
}

type hitRecord struct {
	Base     float64 `json:"base"`
	PerLevel float64 `json:"per_level"`
	Scaling  float64 `json:"scaling"`
}

type attackRecord struct {
	hitRecord
	SecondHit         *hitRecord `json:"second_hit,omitempty"`
	DamageProgression []float64  `json:"damage_progression,omitempty"`
	SwingProgression  []float64  `json:"swing_progression,omitempty"`
}

type characterRecord struct {
	ID              int32                 `json:"id"`
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	Type            string                `json:"type"`
	Stats           map[string]statRecord `json:"stats"`
	Attack          attackRecord          `json:"basic_attack"`
	UsesMana        bool                  `json:"uses_mana"`
	SignatureRootID int32                 `json:"signature_root_id,omitempty"`
	CritCapable     bool                  `json:"crit_capable,omitempty"`
}

func (rec characterRecord) toModel() (*model.Character, error) {
	role, ok := model.ParseRole(rec.Role)
	if !ok {
		return nil, fmt.Errorf("character %d %q: unknown role %q", rec.ID, rec.Name, rec.Role)
	}

	var dtype model.DamageType
	switch rec.Type {
	case "physical":
		dtype = model.DamagePhysical
	case "magical":
		dtype = model.DamageMagical
	default:
		return nil, fmt.Errorf("character %d %q: unknown damage type %q", rec.ID, rec.Name, rec.Type)
	}

	stats := make(map[model.Attribute]model.BaseStat, len(rec.Stats))
	for name, s := range rec.Stats {
		attr, ok := model.ParseAttribute(name)
		if !ok {
			return nil, fmt.Errorf("character %d %q: unknown stat %q", rec.ID, rec.Name, name)
		}
		stats[attr] = model.BaseStat{Base: s.Base, PerLevel: s.PerLevel}
	}

	attack := model.BasicAttack{
		HitParams: model.HitParams{
			Base:     rec.Attack.Base,
			PerLevel: rec.Attack.PerLevel,
			Scaling:  rec.Attack.Scaling,
		},
		DamageProgression: rec.Attack.DamageProgression,
		SwingProgression:  rec.Attack.SwingProgression,
	}
	if sh := rec.Attack.SecondHit; sh != nil {
		attack.SecondHit = &model.HitParams{Base: sh.Base, PerLevel: sh.PerLevel, Scaling: sh.Scaling}
	}

	return &model.Character{
		ID:              rec.ID,
		Name:            rec.Name,
		Role:            role,
		Type:            dtype,
		Stats:           stats,
		Attack:          attack,
		UsesMana:        rec.UsesMana,
		SignatureRootID: rec.SignatureRootID,
		CritCapable:     rec.CritCapable,
	}, nil
}

type propertyRecord struct {
	Stat    string  `json:"stat"`
	Flat    float64 `json:"flat,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

type effectRecord struct {
	Trigger   string  `json:"trigger"`
	Kind      string  `json:"kind"`
	Value     float64 `json:"value,omitempty"`
	Scaling   float64 `json:"scaling,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	Cooldown  float64 `json:"cooldown,omitempty"`
	MaxStacks int32   `json:"max_stacks,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

type itemRecord struct {
	ID              int32            `json:"id"`
	Name            string           `json:"name"`
	Tier            int32            `json:"tier"`
	ParentID        int32            `json:"parent_id,omitempty"`
	Price           int32            `json:"price"`
	Kind            string           `json:"kind"`
	Starter         bool             `json:"starter,omitempty"`
	Glyph           bool             `json:"glyph,omitempty"`
	RestrictedRoles []string         `json:"restricted_roles,omitempty"`
	Properties      []propertyRecord `json:"properties"`
	Effects         []effectRecord   `json:"effects,omitempty"`
}

var itemKinds = map[string]model.ItemKind{
	"equipment":  model.KindEquipment,
	"relic":      model.KindRelic,
	"consumable": model.KindConsumable,
}

var effectTriggers = map[string]model.EffectTrigger{
	"passive":   model.TriggerPassive,
	"on_hit":    model.TriggerOnHit,
	"on_crit":   model.TriggerOnCrit,
	"on_defend": model.TriggerOnDefend,
}

var effectKinds = map[string]model.EffectKind{
	"execute":              model.EffectExecute,
	"shred_stack":          model.EffectShredStack,
	"speed_to_power":       model.EffectSpeedToPower,
	"stack_heal":           model.EffectStackHeal,
	"crit_suppress":        model.EffectCritSuppress,
	"threshold_mitigation": model.EffectThresholdMitigation,
	"on_hit_speed":         model.EffectOnHitSpeed,
	"on_crit_bonus":        model.EffectOnCritBonus,
	"pen_overcap":          model.EffectPenOvercap,
}

func (rec itemRecord) toModel() (*model.Item, error) {
	kind, ok := itemKinds[rec.Kind]
	if !ok {
		return nil, fmt.Errorf("item %d %q: unknown kind %q", rec.ID, rec.Name, rec.Kind)
	}

	roles := make([]model.Role, 0, len(rec.RestrictedRoles))
	for _, name := range rec.RestrictedRoles {
		role, ok := model.ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("item %d %q: unknown restricted role %q", rec.ID, rec.Name, name)
		}
		roles = append(roles, role)
	}

	props := make([]model.Property, 0, len(rec.Properties))
	for _, p := range rec.Properties {
		attr, ok := model.ParseAttribute(p.Stat)
		if !ok {
			return nil, fmt.Errorf("item %d %q: unknown stat %q", rec.ID, rec.Name, p.Stat)
		}
		props = append(props, model.Property{Attribute: attr, Flat: p.Flat, Percent: p.Percent})
	}

	effects := make([]model.EffectRule, 0, len(rec.Effects))
	for _, e := range rec.Effects {
		trigger, ok := effectTriggers[e.Trigger]
		if !ok {
			return nil, fmt.Errorf("item %d %q: unknown effect trigger %q", rec.ID, rec.Name, e.Trigger)
		}
		ekind, ok := effectKinds[e.Kind]
		if !ok {
			return nil, fmt.Errorf("item %d %q: unknown effect kind %q", rec.ID, rec.Name, e.Kind)
		}
		effects = append(effects, model.EffectRule{
			Trigger:   trigger,
			Kind:      ekind,
			Value:     e.Value,
			Scaling:   e.Scaling,
			Duration:  e.Duration,
			Cooldown:  e.Cooldown,
			MaxStacks: e.MaxStacks,
			Threshold: e.Threshold,
		})
	}

	return &model.Item{
		ID:              rec.ID,
		Name:            rec.Name,
		Tier:            rec.Tier,
		ParentID:        rec.ParentID,
		Price:           rec.Price,
		Kind:            kind,
		Starter:         rec.Starter,
		Glyph:           rec.Glyph,
		RestrictedRoles: roles,
		Properties:      props,
		Effects:         effects,
	}, nil
}

package model

import (
	"errors"
	"fmt"
)

// Terminal, user-facing outcomes. Rejections inside the search hot path
// are plain boolean/value returns, not errors.
var (
	// ErrBuildNotFound: the search exhausted its pruned space without a
	// single legal combination.
	ErrBuildNotFound = errors.New("no legal build found")

	// ErrCannotKill: the simulation hit its safety ceiling; net damage
	// per cycle does not outpace the defender's regeneration.
	ErrCannotKill = errors.New("attacker cannot kill defender")
)

// CatalogError — нарушение предусловий каталога (битая ссылка на предмет
// или родителя). Фатально для запроса, не ретраится.
type CatalogError struct {
	Kind string // "item", "parent", "character"
	ID   int32
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog inconsistency: %s %d not found", e.Kind, e.ID)
}

// InvalidStatError — именованный приоритетный атрибут не применим к типу
// урона персонажа (например, magical power для физического персонажа).
type InvalidStatError struct {
	Stat      string
	Character string
}

func (e *InvalidStatError) Error() string {
	return fmt.Sprintf("%s is not a valid stat for %s", e.Stat, e.Character)
}

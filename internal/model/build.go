package model

import "fmt"

// MaxBuildSlots — предел предметов в одной сборке.
const MaxBuildSlots = 6

// Build — сборка предметов одного персонажа. Создаётся на один вызов
// поиска или симуляции, не персистится.
type Build struct {
	Character *Character
	Items     []*Item
}

// Validate checks the build invariants against the catalog:
// slot limit, at most one starter chain, at most one glyph, no two items
// sharing an upgrade ancestry chain, and the mandatory signature item for
// characters that have one.
func (b *Build) Validate(items *ItemCatalog) error {
	if len(b.Items) > MaxBuildSlots {
		return &BuildInvariantError{Reason: "too many items"}
	}

	starters := 0
	glyphs := 0
	roots := make(map[int32]struct{}, len(b.Items))
	hasSignature := false

	for _, it := range b.Items {
		if _, dup := roots[it.RootID]; dup {
			// An item never coexists with its own upgraded or glyphed form.
			return &BuildInvariantError{Reason: "duplicate upgrade chain", ItemID: it.ID}
		}
		roots[it.RootID] = struct{}{}

		if items.IsStarterChain(it) {
			starters++
		}
		if it.Glyph {
			glyphs++
		}
		if b.Character != nil && it.RootID == b.Character.SignatureRootID {
			hasSignature = true
		}
	}

	if starters > 1 {
		return &BuildInvariantError{Reason: "multiple starter items"}
	}
	if glyphs > 1 {
		return &BuildInvariantError{Reason: "multiple glyphs"}
	}
	if b.Character != nil && b.Character.SignatureRootID != 0 && !hasSignature &&
		len(b.Items) == MaxBuildSlots {
		return &BuildInvariantError{Reason: "signature item missing"}
	}
	return nil
}

// BuildInvariantError — нарушение инварианта сборки.
type BuildInvariantError struct {
	Reason string
	ItemID int32
}

func (e *BuildInvariantError) Error() string {
	if e.ItemID != 0 {
		return fmt.Sprintf("invalid build: %s (item %d)", e.Reason, e.ItemID)
	}
	return "invalid build: " + e.Reason
}

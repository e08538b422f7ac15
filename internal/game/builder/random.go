package builder

import (
	"github.com/avessi/godforge/internal/game/stats"
	"github.com/avessi/godforge/internal/model"
)

// randomAttempts — сколько раз генератор пробует собрать легальную
// сборку прежде чем сдаться.
const randomAttempts = 64

// Random assembles a random cap-legal build for the character from the
// pool. A character with a signature chain always receives its highest
// available signature item, the rest of the slots are filled with
// distinct-chain equipment. Returns ErrBuildNotFound when the pool
// cannot fill a legal build.
func (b *Builder) Random(ch *model.Character, pool []*model.Item) (*model.Build, error) {
	var (
		fillers  []*model.Item
		starters []*model.Item
		glyphs   []*model.Item
		sig      *model.Item
	)
	for _, it := range pool {
		if it.Kind != model.KindEquipment || it.RestrictedFor(ch.Role) || !it.Fits(ch.Type) {
			continue
		}
		switch {
		case ch.SignatureRootID != 0 && it.RootID == ch.SignatureRootID:
			if sig == nil || it.Tier > sig.Tier {
				sig = it
			}
		case it.Glyph:
			glyphs = append(glyphs, it)
		case it.Tier == 2 && b.items.IsStarterChain(it):
			starters = append(starters, it)
		case it.Tier >= 3:
			fillers = append(fillers, it)
		}
	}
	if ch.SignatureRootID != 0 && sig == nil {
		return nil, model.ErrBuildNotFound
	}

	for attempt := 0; attempt < randomAttempts; attempt++ {
		build := b.randomOnce(ch, sig, starters, glyphs, fillers)
		if build == nil {
			break
		}
		if err := build.Validate(b.items); err != nil {
			continue
		}
		if _, ok := stats.Legal(ch, build.Items); ok {
			return build, nil
		}
	}
	return nil, model.ErrBuildNotFound
}

func (b *Builder) randomOnce(ch *model.Character, sig *model.Item, starters, glyphs, fillers []*model.Item) *model.Build {
	items := make([]*model.Item, 0, model.MaxBuildSlots)
	roots := make(map[int32]struct{})

	take := func(it *model.Item) {
		items = append(items, it)
		roots[it.RootID] = struct{}{}
	}
	if sig != nil {
		take(sig)
	}
	if len(starters) > 0 && b.rng.IntN(2) == 0 {
		take(starters[b.rng.IntN(len(starters))])
	}
	if len(glyphs) > 0 && b.rng.IntN(2) == 0 {
		take(glyphs[b.rng.IntN(len(glyphs))])
	}

	perm := b.rng.Perm(len(fillers))
	for _, i := range perm {
		if len(items) >= model.MaxBuildSlots {
			break
		}
		it := fillers[i]
		if _, taken := roots[it.RootID]; taken {
			continue
		}
		take(it)
	}
	if len(items) < model.MaxBuildSlots {
		return nil
	}
	return &model.Build{Character: ch, Items: items}
}

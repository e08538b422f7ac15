package builder

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/avessi/godforge/internal/game/score"
	"github.com/avessi/godforge/internal/game/search"
	"github.com/avessi/godforge/internal/game/sim"
	"github.com/avessi/godforge/internal/game/stats"
	"github.com/avessi/godforge/internal/model"
)

// Builder — фасад над поиском и симуляцией: находит сборки-кандидаты
// и ранжирует их по суммарному TTK против представителей каждой роли.
type Builder struct {
	items  *model.ItemCatalog
	chars  *model.CharacterCatalog
	engine *search.Engine
	sim    *sim.Simulator
	rng    *rand.Rand
}

// Options управляет оптимизацией.
type Options struct {
	// Priorities — дополнительные приоритетные статы. Для каждого
	// запускается отдельный поиск, лучшие сборки сравниваются по TTK.
	Priorities []string

	PreferredStarterRoots []int32
}

// Ranked — сборка с результатами ранжирования.
type Ranked struct {
	Build     *model.Build
	Score     float64
	TotalTTK  float64
	TTKByRole map[model.Role]float64
	Evaluated int
}

func New(items *model.ItemCatalog, chars *model.CharacterCatalog, rng *rand.Rand) *Builder {
	return &Builder{
		items:  items,
		chars:  chars,
		engine: search.New(items),
		sim:    sim.New(rng),
		rng:    rng,
	}
}

// Optimize searches one candidate build per weight profile (the plain
// role profile plus one per requested priority), then ranks the distinct
// candidates by summed TTK against a representative opponent of every
// role. Lower total TTK ranks first.
func (b *Builder) Optimize(ctx context.Context, ch *model.Character, pool []*model.Item, opts Options) ([]Ranked, error) {
	profiles := []score.Weights{score.RoleWeights(ch.Role)}
	for _, p := range opts.Priorities {
		w, err := score.WithPriority(ch, p)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, w)
	}

	var (
		candidates []Ranked
		seen       = make(map[string]struct{})
	)
	for _, w := range profiles {
		res, err := b.engine.Run(ctx, ch, pool, search.Options{
			Weights:               w,
			PreferredStarterRoots: opts.PreferredStarterRoots,
		})
		if errors.Is(err, model.ErrBuildNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		key := buildKey(res.Build)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, Ranked{
			Build:     res.Build,
			Score:     res.Score,
			Evaluated: res.Evaluated,
		})
	}
	if len(candidates) == 0 {
		return nil, model.ErrBuildNotFound
	}

	opponents := b.representatives(ch)
	for i := range candidates {
		total, byRole, err := b.rank(ctx, &candidates[i], opponents)
		if err != nil {
			return nil, err
		}
		candidates[i].TotalTTK = total
		candidates[i].TTKByRole = byRole
	}

	slices.SortFunc(candidates, func(a, c Ranked) int {
		return cmp.Compare(a.TotalTTK, c.TotalTTK)
	})
	slog.Debug("builds ranked",
		"character", ch.Name,
		"candidates", len(candidates),
		"best_ttk", candidates[0].TotalTTK)
	return candidates, nil
}

// rank simulates the build against every representative opponent and
// sums the TTKs. An opponent the build cannot kill contributes the
// simulation ceiling as a penalty instead of failing the whole ranking.
func (b *Builder) rank(ctx context.Context, r *Ranked, opponents []*model.Character) (float64, map[model.Role]float64, error) {
	att, err := sim.NewCombatant(r.Build.Character, r.Build.Items, stats.ReferenceLevel)
	if err != nil {
		return 0, nil, err
	}

	var total float64
	byRole := make(map[model.Role]float64, len(opponents))
	for _, opp := range opponents {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		def, err := sim.NewCombatant(opp, nil, stats.ReferenceLevel)
		if err != nil {
			return 0, nil, err
		}
		ttk, err := b.sim.TTK(att, def)
		switch {
		case errors.Is(err, model.ErrCannotKill):
			ttk = b.sim.MaxSeconds
		case err != nil:
			return 0, nil, err
		}
		byRole[opp.Role] = ttk
		total += ttk
	}
	return total, byRole, nil
}

// representatives picks one deterministic opponent per role, excluding
// the character itself. Catalog order by id keeps runs reproducible.
func (b *Builder) representatives(ch *model.Character) []*model.Character {
	var all []*model.Character
	b.chars.All(func(c *model.Character) bool {
		all = append(all, c)
		return true
	})
	slices.SortFunc(all, func(a, c *model.Character) int {
		return cmp.Compare(a.ID, c.ID)
	})

	picked := make(map[model.Role]*model.Character)
	for _, c := range all {
		if c.ID == ch.ID {
			continue
		}
		if _, ok := picked[c.Role]; !ok {
			picked[c.Role] = c
		}
	}

	out := make([]*model.Character, 0, len(picked))
	for _, c := range all {
		if picked[c.Role] == c {
			out = append(out, c)
		}
	}
	return out
}

func buildKey(b *model.Build) string {
	ids := make([]int32, len(b.Items))
	for i, it := range b.Items {
		ids[i] = it.ID
	}
	slices.Sort(ids)
	var key []byte
	for _, id := range ids {
		key = append(key, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(key)
}

// Package search enumerates pruned item combinations to find the
// best-scoring legal build for a character.
package search

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"github.com/avessi/godforge/internal/game/score"
	"github.com/avessi/godforge/internal/model"
)

// targetSize — число обычных слотов, заполняемых поиском. Шестой слот
// занимает стартовый предмет либо остаётся за активным снаряжением.
const targetSize = 5

// Options настраивают один запуск поиска.
type Options struct {
	// Weights override; nil means the character's role defaults.
	Weights score.Weights

	// PreferredStarterRoots limits the starter partition to these upgrade
	// chains. Empty means every starter chain in the pool.
	PreferredStarterRoots []int32

	// YieldEvery controls how often the enumeration checks for
	// cancellation and yields to the scheduler. Zero means every
	// candidate.
	YieldEvery int
}

// Result — лучший найденный билд и счётчик проверенных комбинаций.
// Evaluated сообщает о полноте перебора, это не сигнал ошибки.
type Result struct {
	Build     *model.Build
	Score     float64
	Evaluated int
}

// Engine выполняет поиск по предвычисленному пулу кандидатов.
type Engine struct {
	catalog *model.ItemCatalog
}

// New returns a search engine over the item catalog.
func New(catalog *model.ItemCatalog) *Engine {
	return &Engine{catalog: catalog}
}

// Run searches the pool for the best legal build for the character.
//
// The pool is assumed pre-filtered for type/role legality by the caller.
// The engine prunes it further (top half by item score, tier >= 3, no
// item that is the direct upgrade parent of another pooled item), then
// enumerates combinations per (starter, glyph|none) pairing, memoizing
// combinations across the whole run.
//
// Cancellation is honored only at yield points between candidate checks;
// a cancelled search never returns a partial result.
func (e *Engine) Run(ctx context.Context, ch *model.Character, pool []*model.Item, opts Options) (Result, error) {
	w := opts.Weights
	if w == nil {
		w = score.RoleWeights(ch.Role)
	}

	itemScores := make(map[int32]float64, len(pool))
	for _, it := range pool {
		itemScores[it.ID] = score.Item(ch, it, w)
	}

	candidates := e.pruneCandidates(ch, pool, itemScores)
	starters := e.eligibleStarters(pool, opts.PreferredStarterRoots)
	glyphs := eligibleGlyphs(candidates)
	fillers := withoutGlyphs(candidates)

	run := &searchRun{
		engine:     e,
		ch:         ch,
		weights:    w,
		itemScores: itemScores,
		seen:       make(map[string]struct{}),
		yieldEvery: max(1, opts.YieldEvery),
	}

	best := Result{Score: negInf}
	for _, starter := range starters {
		for _, glyph := range glyphs {
			partial := []*model.Item{starter, glyph}
			rest := withoutChainOf(fillers, glyph)
			if err := run.enumerate(ctx, partial, rest, targetSize-1, &best); err != nil {
				return Result{}, err
			}
		}
		// The no-glyph partition enumerates over the full filler set.
		if err := run.enumerate(ctx, []*model.Item{starter}, fillers, targetSize, &best); err != nil {
			return Result{}, err
		}
	}

	best.Evaluated = run.evaluated
	if best.Build == nil {
		return Result{Evaluated: run.evaluated}, model.ErrBuildNotFound
	}

	orderForDisplay(e.catalog, best.Build)
	slog.Debug("search finished",
		"character", ch.Name,
		"evaluated", run.evaluated,
		"score", best.Score)
	return best, nil
}

const negInf = -1e308

// pruneCandidates keeps the top half of the pool by individual score,
// restricted to tier 3+, and drops any item that is the direct upgrade
// parent of another still-pooled item: holding both an item and its own
// evolution is never legal.
func (e *Engine) pruneCandidates(ch *model.Character, pool []*model.Item, itemScores map[int32]float64) []*model.Item {
	rated := make([]*model.Item, 0, len(pool))
	for _, it := range pool {
		if it.Tier >= 3 && it.Kind == model.KindEquipment {
			rated = append(rated, it)
		}
	}
	sort.Slice(rated, func(i, j int) bool {
		return itemScores[rated[i].ID] > itemScores[rated[j].ID]
	})
	rated = rated[:len(rated)-len(rated)/2]

	parents := make(map[int32]struct{}, len(rated))
	for _, it := range rated {
		if it.ParentID != 0 {
			parents[it.ParentID] = struct{}{}
		}
	}
	out := rated[:0]
	for _, it := range rated {
		if _, isParent := parents[it.ID]; !isParent {
			out = append(out, it)
		}
	}
	return out
}

// eligibleStarters returns tier-2 upgrades of starter chains, optionally
// limited to the preferred roots.
func (e *Engine) eligibleStarters(pool []*model.Item, preferredRoots []int32) []*model.Item {
	var out []*model.Item
	for _, it := range pool {
		if it.Tier != 2 || it.Starter || !e.catalog.IsStarterChain(it) {
			continue
		}
		if len(preferredRoots) > 0 && !slices.Contains(preferredRoots, it.RootID) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// eligibleGlyphs returns the tier-4 glyph items among the candidates.
func eligibleGlyphs(candidates []*model.Item) []*model.Item {
	var out []*model.Item
	for _, it := range candidates {
		if it.Glyph && it.Tier == 4 {
			out = append(out, it)
		}
	}
	return out
}

// withoutGlyphs drops glyphs from the filler set: glyphs only enter a
// build through the partition step.
func withoutGlyphs(candidates []*model.Item) []*model.Item {
	out := make([]*model.Item, 0, len(candidates))
	for _, it := range candidates {
		if !it.Glyph {
			out = append(out, it)
		}
	}
	return out
}

// withoutChainOf removes items sharing the given item's upgrade chain.
func withoutChainOf(items []*model.Item, of *model.Item) []*model.Item {
	out := make([]*model.Item, 0, len(items))
	for _, it := range items {
		if it.RootID != of.RootID {
			out = append(out, it)
		}
	}
	return out
}

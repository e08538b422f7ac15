package search

import (
	"context"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/avessi/godforge/internal/game/score"
	"github.com/avessi/godforge/internal/game/stats"
	"github.com/avessi/godforge/internal/model"
)

// searchRun — состояние одного запуска поиска: глобальный seen-set
// мемоизации, счётчик комбинаций и настройки кооперативной уступки.
type searchRun struct {
	engine     *Engine
	ch         *model.Character
	weights    score.Weights
	itemScores map[int32]float64

	seen       map[string]struct{}
	evaluated  int
	yieldEvery int
	sinceYield int
}

// enumerate fills size slots from the candidates on top of the partial
// set, checking each deduplicated combination for cap legality and
// keeping the best score seen so far.
func (r *searchRun) enumerate(ctx context.Context, partial, candidates []*model.Item, size int, best *Result) error {
	if size <= 0 || len(candidates) < size {
		return nil
	}

	combo := make([]*model.Item, size)
	var walk func(start, depth int) error
	walk = func(start, depth int) error {
		if depth == size {
			return r.check(ctx, partial, combo, best)
		}
		for i := start; i <= len(candidates)-(size-depth); i++ {
			if conflicts(combo[:depth], partial, candidates[i]) {
				continue
			}
			combo[depth] = candidates[i]
			if err := walk(i+1, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(0, 0)
}

// check scores one full candidate combination.
func (r *searchRun) check(ctx context.Context, partial, combo []*model.Item, best *Result) error {
	if err := r.yield(ctx); err != nil {
		return err
	}

	items := make([]*model.Item, 0, len(partial)+len(combo))
	items = append(items, partial...)
	items = append(items, combo...)

	key := comboKey(items)
	if _, dup := r.seen[key]; dup {
		return nil
	}
	r.seen[key] = struct{}{}
	r.evaluated++

	if _, ok := stats.Legal(r.ch, items); !ok {
		return nil
	}

	total := 0.0
	for _, it := range items {
		total += r.itemScores[it.ID]
	}
	if total > best.Score || best.Build == nil {
		best.Score = total
		best.Build = &model.Build{Character: r.ch, Items: items}
	}
	return nil
}

// yield hands control back to the scheduler between candidate checks so
// concurrent searches interleave, and honors cancellation. No partial
// result survives a cancelled run.
func (r *searchRun) yield(ctx context.Context) error {
	r.sinceYield++
	if r.sinceYield < r.yieldEvery {
		return nil
	}
	r.sinceYield = 0
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}

// conflicts reports whether the item shares an upgrade chain with any
// already-picked item.
func conflicts(picked, partial []*model.Item, it *model.Item) bool {
	for _, p := range picked {
		if p.RootID == it.RootID {
			return true
		}
	}
	for _, p := range partial {
		if p != nil && p.RootID == it.RootID {
			return true
		}
	}
	return false
}

// comboKey builds the memoization key: sorted item ids.
func comboKey(items []*model.Item) string {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = int(it.ID)
	}
	sort.Ints(ids)
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// orderForDisplay arranges the build for presentation: starter first,
// evolved tier-4 non-glyph items right after, the remainder by ascending
// effective price. Applied after the search; legality and scoring never
// depend on slot order.
func orderForDisplay(catalog *model.ItemCatalog, b *model.Build) {
	items := b.Items
	sort.SliceStable(items, func(i, j int) bool {
		return displayRank(catalog, items[i]) < displayRank(catalog, items[j])
	})
}

func displayRank(catalog *model.ItemCatalog, it *model.Item) int64 {
	if catalog.IsStarterChain(it) {
		return -1 << 40
	}
	if it.IsEvolved() {
		// Evolved items sort among themselves by price, ahead of the rest.
		return int64(catalog.Price(it)) - 1<<32
	}
	return int64(catalog.Price(it))
}

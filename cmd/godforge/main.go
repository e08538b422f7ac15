package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avessi/godforge/internal/config"
	"github.com/avessi/godforge/internal/data"
	"github.com/avessi/godforge/internal/db"
	"github.com/avessi/godforge/internal/game/builder"
	"github.com/avessi/godforge/internal/model"
)

const ConfigPath = "config/godforge.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		cfgPath   = flag.String("config", ConfigPath, "path to config file")
		character = flag.String("character", "", "character name (empty = optimize all)")
		priority  = flag.String("priority", "", "comma-separated priority stats")
		random    = flag.Bool("random", false, "generate a random legal build instead of optimizing")
		save      = flag.Bool("save", false, "store results in the database")
	)
	flag.Parse()

	if p := os.Getenv("GODFORGE_CONFIG"); p != "" && *cfgPath == ConfigPath {
		*cfgPath = p
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("godforge starting", "config", *cfgPath)

	chars, err := data.LoadCharacters(cfg.CharacterCache)
	if err != nil {
		return fmt.Errorf("loading characters: %w", err)
	}
	items, err := data.LoadItems(cfg.ItemCache)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}

	var repo *db.BuildRepository
	if *save {
		if !cfg.Database.Enabled {
			return fmt.Errorf("-save requires database.enabled in config")
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		repo = db.NewBuildRepository(database.Pool())
		slog.Info("database connected, migrations applied")
	}

	pool := make([]*model.Item, 0, items.Len())
	items.All(func(it *model.Item) bool {
		pool = append(pool, it)
		return true
	})

	targets, err := selectCharacters(chars, *character)
	if err != nil {
		return err
	}

	priorities := cfg.Search.Priorities
	if *priority != "" {
		for _, p := range strings.Split(*priority, ",") {
			priorities = append(priorities, strings.TrimSpace(p))
		}
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, ch := range targets {
		g.Go(func() error {
			// Own rng per goroutine: rand.Rand is not safe for
			// concurrent use.
			rng := rand.New(rand.NewPCG(seed, uint64(ch.ID)))
			b := builder.New(items, chars, rng)

			if *random {
				build, err := b.Random(ch, pool)
				if err != nil {
					return fmt.Errorf("random build for %s: %w", ch.Name, err)
				}
				mu.Lock()
				printBuild(items, ch, build, nil)
				mu.Unlock()
				return nil
			}

			ranked, err := b.Optimize(gctx, ch, pool, builder.Options{Priorities: priorities})
			if err != nil {
				return fmt.Errorf("optimizing %s: %w", ch.Name, err)
			}
			best := &ranked[0]

			mu.Lock()
			printBuild(items, ch, best.Build, best)
			mu.Unlock()

			if repo != nil {
				rec := db.OptimizedBuild{
					CharacterID:   ch.ID,
					CharacterName: ch.Name,
					Role:          ch.Role.String(),
					ItemIDs:       itemIDs(best.Build),
					Score:         best.Score,
					TotalTTK:      best.TotalTTK,
					Evaluated:     int64(best.Evaluated),
				}
				if _, err := repo.Save(gctx, rec); err != nil {
					return fmt.Errorf("saving build for %s: %w", ch.Name, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// selectCharacters resolves the -character flag against the catalog.
// Empty name selects every character.
func selectCharacters(chars *model.CharacterCatalog, name string) ([]*model.Character, error) {
	var out []*model.Character
	chars.All(func(ch *model.Character) bool {
		if name == "" || strings.EqualFold(ch.Name, name) {
			out = append(out, ch)
		}
		return true
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("character %q not found in catalog", name)
	}
	return out, nil
}

func printBuild(items *model.ItemCatalog, ch *model.Character, build *model.Build, ranked *builder.Ranked) {
	fmt.Printf("%s (%s)\n", ch.Name, ch.Role)
	for _, it := range build.Items {
		fmt.Printf("  %-30s tier %d  %d gold\n", it.Name, it.Tier, items.Price(it))
	}
	if ranked != nil {
		fmt.Printf("  score %.2f  total TTK %.2fs  combinations %d\n",
			ranked.Score, ranked.TotalTTK, ranked.Evaluated)
	}
	fmt.Println()
}

func itemIDs(b *model.Build) []int32 {
	ids := make([]int32, len(b.Items))
	for i, it := range b.Items {
		ids[i] = it.ID
	}
	return ids
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

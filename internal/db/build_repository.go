package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OptimizedBuild — сохранённый результат оптимизации для персонажа.
type OptimizedBuild struct {
	ID            int64
	CharacterID   int32
	CharacterName string
	Role          string
	ItemIDs       []int32
	Score         float64
	TotalTTK      float64
	Evaluated     int64
	CreatedAt     time.Time
}

// BuildRepository хранит результаты оптимизации в PostgreSQL.
type BuildRepository struct {
	pool *pgxpool.Pool
}

// NewBuildRepository создаёт новый repository.
func NewBuildRepository(pool *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{pool: pool}
}

// Save записывает результат и возвращает его id.
func (r *BuildRepository) Save(ctx context.Context, b OptimizedBuild) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO optimized_builds
		   (character_id, character_name, role, item_ids, score, total_ttk, evaluated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		b.CharacterID, b.CharacterName, b.Role, b.ItemIDs, b.Score, b.TotalTTK, b.Evaluated,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("saving build for character %d: %w", b.CharacterID, err)
	}
	return id, nil
}

// LatestForCharacter возвращает последние результаты для персонажа,
// новейшие первыми.
func (r *BuildRepository) LatestForCharacter(ctx context.Context, characterID int32, limit int) ([]OptimizedBuild, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, character_id, character_name, role, item_ids, score, total_ttk, evaluated, created_at
		 FROM optimized_builds
		 WHERE character_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		characterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying builds for character %d: %w", characterID, err)
	}
	defer rows.Close()

	var out []OptimizedBuild
	for rows.Next() {
		var b OptimizedBuild
		if err := rows.Scan(
			&b.ID, &b.CharacterID, &b.CharacterName, &b.Role,
			&b.ItemIDs, &b.Score, &b.TotalTTK, &b.Evaluated, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning build row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build rows: %w", err)
	}
	return out, nil
}

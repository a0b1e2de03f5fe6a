package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
)

// PostgresProfileRepository реализует profile.Repository для PostgreSQL.
// В отличие от файлового хранилища пишет по одному ключу.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ profile.Repository = (*PostgresProfileRepository)(nil)

// NewPostgresProfileRepository создаёт новый PostgreSQL repository.
// nil log означает slog.Default().
func NewPostgresProfileRepository(pool *pgxpool.Pool, log *slog.Logger) *PostgresProfileRepository {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresProfileRepository{pool: pool, log: log}
}

// GetProfile атомарно получает существующий или создаёт новый профиль с нулевым счётом.
// Использует INSERT ... ON CONFLICT DO NOTHING для защиты от race conditions.
func (r *PostgresProfileRepository) GetProfile(ctx context.Context, name string) (model.PlayerProfile, error) {
	if err := profile.CheckName(name); err != nil {
		return model.PlayerProfile{}, err
	}

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO player_profiles (name, score) VALUES ($1, 0)
		 ON CONFLICT (name) DO NOTHING`, name,
	)
	if err != nil {
		return model.PlayerProfile{}, &profile.StorageError{Op: "insert", Name: name, Err: err}
	}
	if tag.RowsAffected() == 1 {
		r.log.Info("created player profile", "player", name)
	}

	var p model.PlayerProfile
	err = r.pool.QueryRow(ctx,
		`SELECT name, score FROM player_profiles WHERE name = $1`, name,
	).Scan(&p.Name, &p.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("profile %q not found after insert (unexpected)", name)
		}
		return model.PlayerProfile{}, &profile.StorageError{Op: "read", Name: name, Err: err}
	}
	return p, nil
}

// UpdateHighScore записывает счёт, создавая профиль при необходимости.
func (r *PostgresProfileRepository) UpdateHighScore(ctx context.Context, name string, score int) error {
	if err := profile.CheckName(name); err != nil {
		return err
	}
	if err := profile.CheckScore(score); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO player_profiles (name, score) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()`,
		name, score,
	)
	if err != nil {
		return &profile.StorageError{Op: "write", Name: name, Err: err}
	}
	return nil
}

// LoadAll возвращает все профили (для отчётов и тестов).
func (r *PostgresProfileRepository) LoadAll(ctx context.Context) (map[string]model.PlayerProfile, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, score FROM player_profiles`)
	if err != nil {
		return nil, &profile.StorageError{Op: "read", Err: err}
	}
	defer rows.Close()

	out := make(map[string]model.PlayerProfile)
	for rows.Next() {
		var p model.PlayerProfile
		if err := rows.Scan(&p.Name, &p.Score); err != nil {
			return nil, &profile.StorageError{Op: "read", Err: fmt.Errorf("scanning profile row: %w", err)}
		}
		out[p.Name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, &profile.StorageError{Op: "read", Err: err}
	}
	return out, nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
)

// OpenSQLite opens (creating if needed) the SQLite database at path and
// applies migrations.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating sqlite directory %s: %w", dir, err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}
	if err := RunSQLiteMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

// SQLiteProfileRepository реализует profile.Repository поверх встроенной SQLite.
type SQLiteProfileRepository struct {
	db  *sql.DB
	log *slog.Logger
}

var _ profile.Repository = (*SQLiteProfileRepository)(nil)

// NewSQLiteProfileRepository создаёт repository поверх открытой базы.
func NewSQLiteProfileRepository(db *sql.DB, log *slog.Logger) *SQLiteProfileRepository {
	if log == nil {
		log = slog.Default()
	}
	return &SQLiteProfileRepository{db: db, log: log}
}

// GetProfile получает профиль или создаёт его с нулевым счётом.
func (r *SQLiteProfileRepository) GetProfile(ctx context.Context, name string) (model.PlayerProfile, error) {
	if err := profile.CheckName(name); err != nil {
		return model.PlayerProfile{}, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO player_profiles (name, score) VALUES (?, 0)
		 ON CONFLICT (name) DO NOTHING`, name,
	)
	if err != nil {
		return model.PlayerProfile{}, &profile.StorageError{Op: "insert", Name: name, Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 1 {
		r.log.Info("created player profile", "player", name)
	}

	var p model.PlayerProfile
	err = r.db.QueryRowContext(ctx,
		`SELECT name, score FROM player_profiles WHERE name = ?`, name,
	).Scan(&p.Name, &p.Score)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("profile %q not found after insert (unexpected)", name)
		}
		return model.PlayerProfile{}, &profile.StorageError{Op: "read", Name: name, Err: err}
	}
	return p, nil
}

// UpdateHighScore записывает счёт, создавая профиль при необходимости.
func (r *SQLiteProfileRepository) UpdateHighScore(ctx context.Context, name string, score int) error {
	if err := profile.CheckName(name); err != nil {
		return err
	}
	if err := profile.CheckScore(score); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO player_profiles (name, score) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		name, score,
	)
	if err != nil {
		return &profile.StorageError{Op: "write", Name: name, Err: err}
	}
	return nil
}

// LoadAll возвращает все профили.
func (r *SQLiteProfileRepository) LoadAll(ctx context.Context) (map[string]model.PlayerProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, score FROM player_profiles`)
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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Arena holds all configuration for the arena binary.
type Arena struct {
	LogLevel string `yaml:"log_level" env:"SKIRMISH_LOG_LEVEL"`

	Store Store `yaml:"store" envPrefix:"SKIRMISH_STORE_"`
	Game  Game  `yaml:"game" envPrefix:"SKIRMISH_GAME_"`
}

// Store selects and configures the profile store.
type Store struct {
	Backend    string `yaml:"backend" env:"BACKEND"`
	FilePath   string `yaml:"file_path" env:"FILE_PATH"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`

	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Game holds the encounter tuning knobs.
type Game struct {
	StrongEnemyChance    float64 `yaml:"strong_enemy_chance" env:"STRONG_ENEMY_CHANCE"`
	SecondModifierChance float64 `yaml:"second_modifier_chance" env:"SECOND_MODIFIER_CHANCE"`
	StunChance           float64 `yaml:"stun_chance" env:"STUN_CHANCE"`
	LegendaryBonus       int     `yaml:"legendary_bonus" env:"LEGENDARY_BONUS"`
	MaxRounds            int     `yaml:"max_rounds" env:"MAX_ROUNDS"`
}

// DefaultArena returns Arena config with sensible defaults.
func DefaultArena() Arena {
	return Arena{
		LogLevel: "info",
		Store: Store{
			Backend:    BackendFile,
			FilePath:   "data/scores.yaml",
			SQLitePath: "data/profiles.db",
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "skirmish",
				Password: "skirmish",
				DBName:   "skirmish",
				SSLMode:  "disable",
			},
		},
		Game: Game{
			StrongEnemyChance:    0.5,
			SecondModifierChance: 0.3,
			StunChance:           0.5,
			LegendaryBonus:       20,
			MaxRounds:            100,
		},
	}
}

// LoadArena loads arena config from a YAML file and applies SKIRMISH_*
// environment overrides on top. If the file doesn't exist, defaults are used.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv exports variables from a .env file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges.
func (a Arena) Validate() error {
	switch strings.ToLower(a.Store.Backend) {
	case BackendFile:
		if a.Store.FilePath == "" {
			return errors.New("store.file_path is required for the file backend")
		}
	case BackendSQLite:
		if a.Store.SQLitePath == "" {
			return errors.New("store.sqlite_path is required for the sqlite backend")
		}
	case BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", a.Store.Backend)
	}

	probs := map[string]float64{
		"game.strong_enemy_chance":    a.Game.StrongEnemyChance,
		"game.second_modifier_chance": a.Game.SecondModifierChance,
		"game.stun_chance":            a.Game.StunChance,
	}
	for key, p := range probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", key, p)
		}
	}
	if a.Game.LegendaryBonus < 0 {
		return fmt.Errorf("game.legendary_bonus must not be negative, got %d", a.Game.LegendaryBonus)
	}
	if a.Game.MaxRounds <= 0 {
		return fmt.Errorf("game.max_rounds must be positive, got %d", a.Game.MaxRounds)
	}
	return nil
}

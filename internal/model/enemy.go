package model

import (
	"log/slog"
	"strings"
)

// EnemyConfig describes a plain enemy.
type EnemyConfig struct {
	Name       string
	Health     int
	Damage     int
	Resistance float64
	// Roar replaces the default attack narration when set.
	Roar   string
	Logger *slog.Logger
}

// Enemy deals flat damage and mitigates incoming damage by its resistance.
type Enemy struct {
	*Character

	damage     int
	resistance float64
	roar       string
	log        *slog.Logger
}

func NewEnemy(cfg EnemyConfig) (*Enemy, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, configErr("enemy name", cfg.Name)
	}
	if cfg.Health <= 0 || cfg.Damage < 0 || !validFraction(cfg.Resistance) {
		return nil, configErr("enemy stats", cfg.Name)
	}
	return &Enemy{
		Character:  NewCharacter(cfg.Name, cfg.Health),
		damage:     cfg.Damage,
		resistance: cfg.Resistance,
		roar:       cfg.Roar,
		log:        loggerOrDefault(cfg.Logger),
	}, nil
}

func (e *Enemy) Damage() int         { return e.damage }
func (e *Enemy) Resistance() float64 { return e.resistance }

func (e *Enemy) TakeDamage(amount int) {
	dealt := Mitigate(amount, e.resistance)
	e.log.Info("enemy takes damage", "combatant", e.Name(), "damage", dealt)
	if remaining := e.ReduceHealth(dealt); remaining > 0 {
		e.log.Info("enemy health left", "combatant", e.Name(), "health", remaining)
	}
}

func (e *Enemy) Attack(target Combatant) {
	if e.roar != "" {
		e.log.Info(e.roar, "combatant", e.Name())
	} else {
		e.log.Info("enemy attacks", "combatant", e.Name(), "target", target.Name())
	}
	target.TakeDamage(e.damage)
}

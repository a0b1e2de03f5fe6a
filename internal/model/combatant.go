package model

import "log/slog"

// Combatant is anything that can attack and take damage: the hero,
// a plain enemy, or an enemy wrapped in modifiers.
type Combatant interface {
	Name() string
	Health() int
	TakeDamage(amount int)
	Attack(target Combatant)
	IsAlive() bool
}

// Dice is the random source used for crits, scatter and dispel rolls.
// *rand.Rand from math/rand/v2 satisfies it.
type Dice interface {
	Float64() float64
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

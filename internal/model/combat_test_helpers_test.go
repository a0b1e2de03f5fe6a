package model

import (
	"log/slog"
	"testing"
)

// fixedDice returns the same roll every time.
type fixedDice float64

func (d fixedDice) Float64() float64 { return float64(d) }

// recordingTarget captures every TakeDamage call without mitigation.
type recordingTarget struct {
	name   string
	health int
	hits   []int
}

func newRecordingTarget(health int) *recordingTarget {
	return &recordingTarget{name: "Dummy", health: health}
}

func (r *recordingTarget) Name() string  { return r.name }
func (r *recordingTarget) Health() int   { return r.health }
func (r *recordingTarget) IsAlive() bool { return r.health > 0 }

func (r *recordingTarget) TakeDamage(amount int) {
	r.hits = append(r.hits, amount)
	r.health -= amount
}

func (r *recordingTarget) Attack(target Combatant) {}

func (r *recordingTarget) total() int {
	sum := 0
	for _, h := range r.hits {
		sum += h
	}
	return sum
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestGoblin(t *testing.T) *Enemy {
	t.Helper()
	e, err := NewEnemy(EnemyConfig{Name: "Goblin", Health: 50, Damage: 10, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	return e
}

func newTestHero(t *testing.T, class CharacterClass, weapon Weapon, armor Armor) *Hero {
	t.Helper()
	h, err := NewHero(HeroConfig{Name: "Anton", Class: class, Weapon: weapon, Armor: armor, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("NewHero: %v", err)
	}
	return h
}

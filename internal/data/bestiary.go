package data

import (
	"log/slog"
	"strings"

	"github.com/udisondev/skirmish/internal/model"
)

const (
	EnemyGoblin = "goblin"
	EnemyDragon = "dragon"
)

// enemyDef — статическое описание врага из бестиария.
type enemyDef struct {
	key        string
	name       string
	health     int
	damage     int
	resistance float64
	roar       string
}

var enemyDefs = []enemyDef{
	{key: EnemyGoblin, name: "Goblin", health: 50, damage: 10},
	{key: EnemyDragon, name: "Dragon", health: 100, damage: 30, resistance: 0.2, roar: "the dragon breathes fire"},
}

// SpawnEnemy creates a fresh enemy from the bestiary.
// Unknown keys return a *model.ConfigurationError.
func SpawnEnemy(key string, log *slog.Logger) (*model.Enemy, error) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for i := range enemyDefs {
		def := &enemyDefs[i]
		if def.key != normalized {
			continue
		}
		return model.NewEnemy(model.EnemyConfig{
			Name:       def.name,
			Health:     def.health,
			Damage:     def.damage,
			Resistance: def.resistance,
			Roar:       def.roar,
			Logger:     log,
		})
	}
	return nil, &model.ConfigurationError{Kind: "enemy", Key: key}
}

package data

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/skirmish/internal/model"
)

const (
	LocationMysticForest = "mystic forest"
	LocationHauntedManor = "haunted manor"
	LocationDragonLair   = "dragon lair"
)

type spawnFunc func(dice model.Dice, log *slog.Logger) (model.Combatant, error)

// Location is a place the hero can travel to. Each location spawns its own
// kind of enemy and awards its own base score.
type Location struct {
	Key       string
	BaseScore int

	spawn spawnFunc
}

var locations = []Location{
	{Key: LocationMysticForest, BaseScore: 10, spawn: spawnFromBestiary(EnemyGoblin)},
	{Key: LocationHauntedManor, BaseScore: 50, spawn: spawnEnchantedWeapon},
	{Key: LocationDragonLair, BaseScore: 100, spawn: spawnFromBestiary(EnemyDragon)},
}

// AllLocations returns every known location in menu order.
func AllLocations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// LocationByKey resolves a location case-insensitively.
func LocationByKey(key string) (Location, error) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, loc := range locations {
		if loc.Key == normalized {
			return loc, nil
		}
	}
	return Location{}, &model.ConfigurationError{Kind: "location", Key: key}
}

// Enter logs the hero's arrival and spawns the location's enemy.
func (l Location) Enter(hero model.Combatant, dice model.Dice, log *slog.Logger) (model.Combatant, error) {
	if log == nil {
		log = slog.Default()
	}
	log.Info("hero travels", "combatant", hero.Name(), "location", l.Key)

	enemy, err := l.spawn(dice, log)
	if err != nil {
		return nil, fmt.Errorf("spawning enemy at %q: %w", l.Key, err)
	}
	return enemy, nil
}

func spawnFromBestiary(key string) spawnFunc {
	return func(_ model.Dice, log *slog.Logger) (model.Combatant, error) {
		enemy, err := SpawnEnemy(key, log)
		if err != nil {
			return nil, err
		}
		return enemy, nil
	}
}

// spawnEnchantedWeapon enchants the weapon of a random class.
func spawnEnchantedWeapon(dice model.Dice, log *slog.Logger) (model.Combatant, error) {
	classes := model.AllClasses()
	idx := min(int(dice.Float64()*float64(len(classes))), len(classes)-1)

	weapon, err := WeaponFor(classes[idx], dice)
	if err != nil {
		return nil, err
	}
	enchanted, err := model.NewEnchantedWeapon(weapon, dice, log)
	if err != nil {
		return nil, err
	}
	return enchanted, nil
}

package combat

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// Curse describes how a strong enemy gets its modifiers.
type Curse struct {
	SecondModifierChance float64
	LegendaryBonus       int
}

// ApplyEnemyModifiers wraps enemy in one modifier picked by a coin flip
// (legendary or windfury); with SecondModifierChance the other one is
// wrapped on top.
func ApplyEnemyModifiers(enemy model.Combatant, dice model.Dice, curse Curse, log *slog.Logger) (model.Combatant, error) {
	second := dice.Float64() <= curse.SecondModifierChance

	order := []model.ModifierKind{model.ModifierLegendary, model.ModifierWindfury}
	if dice.Float64() >= 0.5 {
		order[0], order[1] = order[1], order[0]
	}
	if !second {
		order = order[:1]
	}

	wrapped := enemy
	for _, kind := range order {
		m, err := model.Wrap(wrapped, kind, curse.LegendaryBonus, log)
		if err != nil {
			return nil, err
		}
		wrapped = m
	}
	return wrapped, nil
}

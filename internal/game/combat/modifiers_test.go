package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/testutil"
)

func TestApplyEnemyModifiers(t *testing.T) {
	tests := []struct {
		name  string
		rolls []float64
		want  []model.ModifierKind
		label string
	}{
		{"legendary only", []float64{0.9, 0.2}, []model.ModifierKind{model.ModifierLegendary}, "Legendary Goblin"},
		{"windfury only", []float64{0.9, 0.7}, []model.ModifierKind{model.ModifierWindfury}, "Windfury Goblin"},
		{"legendary then windfury", []float64{0.1, 0.2},
			[]model.ModifierKind{model.ModifierWindfury, model.ModifierLegendary}, "Windfury Legendary Goblin"},
		{"windfury then legendary", []float64{0.1, 0.7},
			[]model.ModifierKind{model.ModifierLegendary, model.ModifierWindfury}, "Legendary Windfury Goblin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goblin, err := data.SpawnEnemy(data.EnemyGoblin, testutil.DiscardLogger())
			require.NoError(t, err)

			dice := testutil.NewSequenceDice(tt.rolls...)
			curse := Curse{SecondModifierChance: 0.3, LegendaryBonus: model.LegendaryBonus}
			enemy, err := ApplyEnemyModifiers(goblin, dice, curse, testutil.DiscardLogger())
			require.NoError(t, err)

			assert.Equal(t, tt.want, model.Modifiers(enemy))
			assert.Equal(t, tt.label, enemy.Name())
			assert.Same(t, goblin, model.Base(enemy))
			assert.Equal(t, 2, dice.Rolled())
		})
	}
}

func TestApplyEnemyModifiers_BadBonus(t *testing.T) {
	goblin := testutil.NewRecordingCombatant("Goblin", 50, 10)
	_, err := ApplyEnemyModifiers(goblin, testutil.FixedDice(0.1), Curse{LegendaryBonus: -1}, nil)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

package testutil

import "github.com/udisondev/skirmish/internal/model"

// RecordingCombatant records every hit it takes, unmitigated, and deals
// a flat Damage when it attacks.
type RecordingCombatant struct {
	Label   string
	HP      int
	Damage  int
	Hits    []int
	Attacks int
}

var _ model.Combatant = (*RecordingCombatant)(nil)

func NewRecordingCombatant(name string, health, damage int) *RecordingCombatant {
	return &RecordingCombatant{Label: name, HP: health, Damage: damage}
}

func (r *RecordingCombatant) Name() string  { return r.Label }
func (r *RecordingCombatant) Health() int   { return r.HP }
func (r *RecordingCombatant) IsAlive() bool { return r.HP > 0 }

func (r *RecordingCombatant) TakeDamage(amount int) {
	r.Hits = append(r.Hits, amount)
	r.HP -= amount
}

func (r *RecordingCombatant) Attack(target model.Combatant) {
	r.Attacks++
	target.TakeDamage(r.Damage)
}

// Total sums every hit taken.
func (r *RecordingCombatant) Total() int {
	sum := 0
	for _, h := range r.Hits {
		sum += h
	}
	return sum
}

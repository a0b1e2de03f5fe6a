package combat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// ErrRoundLimit is returned when neither side falls within MaxRounds.
var ErrRoundLimit = errors.New("encounter exceeded round limit")

// Round is reported to the round observer after every exchange.
type Round struct {
	Number       int
	HeroHealth   int
	EnemyHealth  int
	EnemyStunned bool
}

// Outcome summarizes a finished encounter.
type Outcome struct {
	Victory bool
	Rounds  int
}

// Options tune an encounter. Zero MaxRounds means unlimited.
type Options struct {
	StunChance float64
	MaxRounds  int
	// Pause runs before every round, e.g. to wait for the player to press Enter.
	Pause  func(ctx context.Context) error
	Logger *slog.Logger
}

// Encounter runs the round loop between the hero and one enemy.
// The hero always strikes first; a stunned enemy skips its turn.
type Encounter struct {
	hero  model.Combatant
	enemy model.Combatant
	dice  model.Dice
	opts  Options
	log   *slog.Logger

	// roundObserver — callback для наблюдения за раундами (nil в production).
	roundObserver func(Round)
}

func NewEncounter(hero, enemy model.Combatant, dice model.Dice, opts Options) *Encounter {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Encounter{hero: hero, enemy: enemy, dice: dice, opts: opts, log: log}
}

// SetRoundObserver sets a callback invoked after each round.
func (e *Encounter) SetRoundObserver(fn func(Round)) {
	e.roundObserver = fn
}

// Run fights until one side is dead, ctx is cancelled, Pause fails or the
// round limit is hit.
func (e *Encounter) Run(ctx context.Context) (Outcome, error) {
	e.log.Info("battle begins", "hero", e.hero.Name(), "enemy", e.enemy.Name())

	var out Outcome
	for e.hero.IsAlive() && e.enemy.IsAlive() {
		if e.opts.MaxRounds > 0 && out.Rounds >= e.opts.MaxRounds {
			return out, fmt.Errorf("%w (%d)", ErrRoundLimit, e.opts.MaxRounds)
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if e.opts.Pause != nil {
			if err := e.opts.Pause(ctx); err != nil {
				return out, fmt.Errorf("waiting for next round: %w", err)
			}
		}

		out.Rounds++
		e.playRound(out.Rounds)
	}

	out.Victory = e.hero.IsAlive()
	if out.Victory {
		e.log.Info("enemy defeated", "hero", e.hero.Name(), "enemy", e.enemy.Name(), "rounds", out.Rounds)
	} else {
		e.log.Info("hero was slain", "hero", e.hero.Name(), "enemy", e.enemy.Name(), "rounds", out.Rounds)
	}
	return out, nil
}

func (e *Encounter) playRound(n int) {
	r := Round{Number: n}

	e.hero.Attack(e.enemy)
	if e.enemy.IsAlive() {
		if e.dice.Float64() < e.opts.StunChance {
			r.EnemyStunned = true
			e.log.Info("enemy stunned", "enemy", e.enemy.Name(), "hero", e.hero.Name())
		} else {
			e.enemy.Attack(e.hero)
		}
	}

	r.HeroHealth = e.hero.Health()
	r.EnemyHealth = e.enemy.Health()
	if e.roundObserver != nil {
		e.roundObserver(r)
	}
}

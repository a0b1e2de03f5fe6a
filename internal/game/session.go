// Package game ties the catalog, the encounter loop and the profile layer
// into a single playable session.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
)

// Request is what the player picked before the battle.
type Request struct {
	Player   string
	Class    string
	Location string
}

// Result describes a finished session.
type Result struct {
	Hero     string
	Class    model.CharacterClass
	Weapon   string
	Armor    string
	Enemy    string
	Location string
	Strong   bool
	Outcome  combat.Outcome
	Score    int

	// Previous — профиль до боя, Profile — после записи очков.
	Previous model.PlayerProfile
	Profile  model.PlayerProfile
}

// Session plays one battle per Play call against a shared profile repository.
type Session struct {
	profiles profile.Repository
	cfg      config.Game
	dice     model.Dice
	log      *slog.Logger

	pause         func(ctx context.Context) error
	roundObserver func(combat.Round)
}

func NewSession(profiles profile.Repository, cfg config.Game, dice model.Dice, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{profiles: profiles, cfg: cfg, dice: dice, log: log}
}

// SetPause sets a hook that runs before every round.
func (s *Session) SetPause(fn func(ctx context.Context) error) {
	s.pause = fn
}

// SetRoundObserver sets a callback invoked after every round.
func (s *Session) SetRoundObserver(fn func(combat.Round)) {
	s.roundObserver = fn
}

// Play runs one full battle for req and records its score.
// The score is written even on defeat, in which case it is 0.
// The request is fully validated before the profile store is touched.
func (s *Session) Play(ctx context.Context, req Request) (Result, error) {
	class, err := model.ParseClass(req.Class)
	if err != nil {
		return Result{}, err
	}
	loc, err := data.LocationByKey(req.Location)
	if err != nil {
		return Result{}, err
	}

	chest, err := data.ChestFor(class, s.dice)
	if err != nil {
		return Result{}, err
	}
	hero, err := model.NewHero(model.HeroConfig{
		Name:   req.Player,
		Class:  class,
		Weapon: chest.Weapon,
		Armor:  chest.Armor,
		Logger: s.log,
	})
	if err != nil {
		return Result{}, err
	}

	player := hero.Name()
	prev, err := s.profiles.GetProfile(ctx, player)
	if err != nil {
		return Result{}, fmt.Errorf("loading profile %q: %w", player, err)
	}

	enemy, err := loc.Enter(hero, s.dice, s.log)
	if err != nil {
		return Result{}, fmt.Errorf("entering %s: %w", loc.Key, err)
	}

	strong := s.dice.Float64() <= s.cfg.StrongEnemyChance
	if strong {
		enemy, err = combat.ApplyEnemyModifiers(enemy, s.dice, combat.Curse{
			SecondModifierChance: s.cfg.SecondModifierChance,
			LegendaryBonus:       s.cfg.LegendaryBonus,
		}, s.log)
		if err != nil {
			return Result{}, err
		}
		s.log.Info("enemy is strong", "enemy", enemy.Name(), "location", loc.Key)
	}

	enc := combat.NewEncounter(hero, enemy, s.dice, combat.Options{
		StunChance: s.cfg.StunChance,
		MaxRounds:  s.cfg.MaxRounds,
		Pause:      s.pause,
		Logger:     s.log,
	})
	if s.roundObserver != nil {
		enc.SetRoundObserver(s.roundObserver)
	}

	out, err := enc.Run(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("battle at %s: %w", loc.Key, err)
	}

	score := combat.FinalScore(loc, strong, out)
	if err := s.profiles.UpdateHighScore(ctx, player, score); err != nil {
		return Result{}, fmt.Errorf("saving score for %q: %w", player, err)
	}

	updated, err := s.profiles.GetProfile(ctx, player)
	if err != nil {
		return Result{}, fmt.Errorf("reloading profile %q: %w", player, err)
	}

	s.log.Info("session finished",
		"player", player,
		"location", loc.Key,
		"victory", out.Victory,
		"score", score,
		"previous_score", prev.Score)

	return Result{
		Hero:     player,
		Class:    hero.Class(),
		Weapon:   hero.Weapon().Name(),
		Armor:    hero.Armor().Name,
		Enemy:    enemy.Name(),
		Location: loc.Key,
		Strong:   strong,
		Outcome:  out,
		Score:    score,
		Previous: prev,
		Profile:  updated,
	}, nil
}

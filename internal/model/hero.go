package model

import (
	"fmt"
	"log/slog"
	"strings"
)

// HeroConfig carries everything needed to build a playable character.
// All fields except Logger are required.
type HeroConfig struct {
	Name   string
	Class  CharacterClass
	Weapon Weapon
	Armor  Armor
	Logger *slog.Logger
}

// Hero is the player's combatant. Identity and equipment are fixed at
// construction; only health changes.
type Hero struct {
	*Character

	class  CharacterClass
	weapon Weapon
	armor  Armor
	log    *slog.Logger
}

// NewHero validates cfg once and returns a ready hero at the class's
// starting health.
func NewHero(cfg HeroConfig) (*Hero, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, configErr("hero name", cfg.Name)
	}
	if !cfg.Class.Valid() {
		return nil, configErr("character class", cfg.Class.String())
	}
	if cfg.Weapon == nil {
		return nil, configErr("weapon", "<nil>")
	}
	if cfg.Armor.Name == "" || !validFraction(cfg.Armor.Defense) {
		return nil, configErr("armor", fmt.Sprintf("%s (defense %.2f)", cfg.Armor.Name, cfg.Armor.Defense))
	}

	return &Hero{
		Character: NewCharacter(name, cfg.Class.StartingHealth()),
		class:     cfg.Class,
		weapon:    cfg.Weapon,
		armor:     cfg.Armor,
		log:       loggerOrDefault(cfg.Logger),
	}, nil
}

func (h *Hero) Class() CharacterClass { return h.class }
func (h *Hero) Weapon() Weapon        { return h.weapon }
func (h *Hero) Armor() Armor          { return h.armor }

// TakeDamage reduces incoming damage by the armor's defense.
func (h *Hero) TakeDamage(amount int) {
	dealt := Mitigate(amount, h.armor.Defense)
	remaining := h.ReduceHealth(dealt)

	h.log.Info(h.armor.Flavor)
	h.log.Info("hero took damage", "combatant", h.Name(), "damage", dealt)
	if remaining > 0 {
		h.log.Info("hero health left", "combatant", h.Name(), "health", remaining)
	}
}

// Attack strikes target with the hero's weapon.
func (h *Hero) Attack(target Combatant) {
	h.log.Info("hero attacks", "combatant", h.Name(), "target", target.Name())
	h.log.Info(h.weapon.Flavor())

	hit := h.weapon.Strike()
	if hit.Critical {
		h.log.Info("critical hit", "combatant", h.Name(), "damage", hit.Damage)
	}
	target.TakeDamage(hit.Damage)
}

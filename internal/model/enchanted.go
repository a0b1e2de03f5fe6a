package model

import "log/slog"

const (
	EnchantedWeaponHealth       = 50
	EnchantedWeaponDispelChance = 0.2
)

// EnchantedWeapon adapts a Weapon into a Combatant. Its damage is rolled
// once from the weapon; any hit may dispel the enchantment outright.
type EnchantedWeapon struct {
	*Character

	weapon       Weapon
	damage       int
	dispelChance float64
	dice         Dice
	log          *slog.Logger
}

func NewEnchantedWeapon(weapon Weapon, dice Dice, log *slog.Logger) (*EnchantedWeapon, error) {
	if weapon == nil {
		return nil, configErr("weapon", "<nil>")
	}
	return &EnchantedWeapon{
		Character:    NewCharacter("Enchanted "+weapon.Name(), EnchantedWeaponHealth),
		weapon:       weapon,
		damage:       weapon.Strike().Damage,
		dispelChance: EnchantedWeaponDispelChance,
		dice:         dice,
		log:          loggerOrDefault(log),
	}, nil
}

func (w *EnchantedWeapon) Weapon() Weapon { return w.weapon }
func (w *EnchantedWeapon) Damage() int    { return w.damage }

// TakeDamage is unmitigated.
func (w *EnchantedWeapon) TakeDamage(amount int) {
	w.log.Info("enemy takes damage", "combatant", w.Name(), "damage", amount)
	remaining := w.ReduceHealth(amount)

	if w.dice.Float64() <= w.dispelChance {
		w.log.Info("the blow dispels the enchantment", "combatant", w.Name())
		w.SetHealth(0)
		return
	}
	if remaining > 0 {
		w.log.Info("enemy health left", "combatant", w.Name(), "health", remaining)
	}
}

func (w *EnchantedWeapon) Attack(target Combatant) {
	w.log.Info("enemy attacks", "combatant", w.Name(), "target", target.Name())
	target.TakeDamage(w.damage)
}

package data

import "github.com/udisondev/skirmish/internal/model"

// Chest is the starting equipment of a class.
type Chest struct {
	Weapon model.Weapon
	Armor  model.Armor
}

// ChestFor returns the starting equipment for class. Weapons that roll
// (bow, staff) use dice.
func ChestFor(class model.CharacterClass, dice model.Dice) (Chest, error) {
	switch class {
	case model.ClassWarrior:
		return Chest{Weapon: model.NewSword(), Armor: model.HeavyArmor()}, nil
	case model.ClassThief:
		return Chest{Weapon: model.NewBow(dice), Armor: model.LightArmor()}, nil
	case model.ClassMage:
		return Chest{Weapon: model.NewStaff(dice), Armor: model.Robe()}, nil
	default:
		return Chest{}, &model.ConfigurationError{Kind: "character class", Key: class.String()}
	}
}

// WeaponFor returns only the weapon of a class's chest.
func WeaponFor(class model.CharacterClass, dice model.Dice) (model.Weapon, error) {
	chest, err := ChestFor(class, dice)
	if err != nil {
		return nil, err
	}
	return chest.Weapon, nil
}

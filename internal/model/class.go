package model

import "strings"

// CharacterClass определяет класс персонажа и его стартовое здоровье.
type CharacterClass uint8

const (
	ClassWarrior CharacterClass = iota + 1
	ClassThief
	ClassMage
)

// AllClasses returns the playable classes in menu order.
func AllClasses() []CharacterClass {
	return []CharacterClass{ClassWarrior, ClassThief, ClassMage}
}

// StartingHealth returns the health a fresh hero of this class begins with.
func (c CharacterClass) StartingHealth() int {
	switch c {
	case ClassWarrior:
		return 100
	case ClassThief:
		return 90
	case ClassMage:
		return 80
	default:
		return 0
	}
}

func (c CharacterClass) String() string {
	switch c {
	case ClassWarrior:
		return "WARRIOR"
	case ClassThief:
		return "THIEF"
	case ClassMage:
		return "MAGE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether c is one of the playable classes.
func (c CharacterClass) Valid() bool {
	return c >= ClassWarrior && c <= ClassMage
}

// ParseClass resolves a class key case-insensitively.
func ParseClass(key string) (CharacterClass, error) {
	normalized := strings.ToUpper(strings.TrimSpace(key))
	for _, c := range AllClasses() {
		if c.String() == normalized {
			return c, nil
		}
	}
	return 0, configErr("character class", key)
}

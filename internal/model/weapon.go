package model

import "math"

// Hit is the outcome of a single weapon strike.
type Hit struct {
	Damage   int
	Critical bool
}

// Weapon supplies the intrinsic damage of whoever wields it.
type Weapon interface {
	Name() string
	// Strike rolls the damage of one blow.
	Strike() Hit
	// Flavor is the narration line logged when the weapon is used.
	Flavor() string
}

const (
	SwordDamage = 20

	BowDamage         = 15
	BowCritChance     = 0.3
	BowCritMultiplier = 2

	StaffDamage  = 25
	StaffScatter = 0.2
)

// Sword always deals its flat damage.
type Sword struct {
	damage int
}

func NewSword() *Sword {
	return &Sword{damage: SwordDamage}
}

func (s *Sword) Name() string   { return "sword" }
func (s *Sword) Flavor() string { return "sword slash" }

func (s *Sword) Strike() Hit {
	return Hit{Damage: s.damage}
}

// Bow deals flat damage with a chance of a critical multiplier.
type Bow struct {
	damage         int
	critChance     float64
	critMultiplier int
	dice           Dice
}

func NewBow(dice Dice) *Bow {
	return &Bow{
		damage:         BowDamage,
		critChance:     BowCritChance,
		critMultiplier: BowCritMultiplier,
		dice:           dice,
	}
}

func (b *Bow) Name() string   { return "bow" }
func (b *Bow) Flavor() string { return "arrow shot" }

func (b *Bow) Strike() Hit {
	if b.dice.Float64() <= b.critChance {
		return Hit{Damage: b.damage * b.critMultiplier, Critical: true}
	}
	return Hit{Damage: b.damage}
}

// Staff deals its base damage scattered by up to ±scatter, rounded.
type Staff struct {
	damage  int
	scatter float64
	dice    Dice
}

func NewStaff(dice Dice) *Staff {
	return &Staff{
		damage:  StaffDamage,
		scatter: StaffScatter,
		dice:    dice,
	}
}

func (s *Staff) Name() string   { return "staff" }
func (s *Staff) Flavor() string { return "the air heats up and a fireball flies from the staff" }

func (s *Staff) Strike() Hit {
	roll := s.dice.Float64()
	factor := 1 + (roll*2*s.scatter - s.scatter)
	return Hit{Damage: int(math.RoundToEven(float64(s.damage) * factor))}
}

package model

// Armor reduces incoming damage multiplicatively by Defense (0.0–1.0).
type Armor struct {
	Name    string
	Defense float64
	Flavor  string
}

func HeavyArmor() Armor {
	return Armor{Name: "heavy armor", Defense: 0.3, Flavor: "heavy armor blocks a large part of the damage"}
}

func LightArmor() Armor {
	return Armor{Name: "light armor", Defense: 0.2, Flavor: "light armor blocks the damage"}
}

func Robe() Armor {
	return Armor{Name: "robe", Defense: 0.1, Flavor: "the robe blocks a little damage"}
}

func validFraction(f float64) bool {
	return f >= 0 && f <= 1
}

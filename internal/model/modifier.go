package model

import "log/slog"

// ModifierKind is the closed set of effects a Modified wrapper can add.
type ModifierKind uint8

const (
	// ModifierLegendary lands an extra hit of Bonus after every attack.
	ModifierLegendary ModifierKind = iota + 1
	// ModifierWindfury repeats the whole wrapped attack once more.
	ModifierWindfury
)

// LegendaryBonus is the default extra damage of a legendary enemy.
const LegendaryBonus = 20

func (k ModifierKind) String() string {
	switch k {
	case ModifierLegendary:
		return "legendary"
	case ModifierWindfury:
		return "windfury"
	default:
		return "unknown"
	}
}

// Modified wraps exactly one combatant and augments its attack.
// Health, damage intake and liveness are always delegated to the wrapped
// combatant; the wrapper owns no state of its own besides the bonus.
type Modified struct {
	inner Combatant
	kind  ModifierKind
	bonus int
	log   *slog.Logger
}

// Wrap builds a modifier of the given kind around inner. bonus is only used
// by ModifierLegendary.
func Wrap(inner Combatant, kind ModifierKind, bonus int, log *slog.Logger) (*Modified, error) {
	if inner == nil {
		return nil, configErr("modifier target", "<nil>")
	}
	switch kind {
	case ModifierLegendary:
		if bonus < 0 {
			return nil, configErr("legendary bonus", kind.String())
		}
	case ModifierWindfury:
	default:
		return nil, configErr("modifier", kind.String())
	}
	return &Modified{inner: inner, kind: kind, bonus: bonus, log: loggerOrDefault(log)}, nil
}

// Legendary wraps inner with the default legendary bonus.
// It panics if inner is nil; use Wrap to get an error instead.
func Legendary(inner Combatant, log *slog.Logger) *Modified {
	return mustWrap(inner, ModifierLegendary, LegendaryBonus, log)
}

// Windfury wraps inner with an extra attack.
// It panics if inner is nil; use Wrap to get an error instead.
func Windfury(inner Combatant, log *slog.Logger) *Modified {
	return mustWrap(inner, ModifierWindfury, 0, log)
}

func mustWrap(inner Combatant, kind ModifierKind, bonus int, log *slog.Logger) *Modified {
	m, err := Wrap(inner, kind, bonus, log)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Modified) Kind() ModifierKind { return m.kind }
func (m *Modified) Bonus() int         { return m.bonus }

// Unwrap returns the wrapped combatant.
func (m *Modified) Unwrap() Combatant { return m.inner }

func (m *Modified) Name() string {
	switch m.kind {
	case ModifierLegendary:
		return "Legendary " + m.inner.Name()
	case ModifierWindfury:
		return "Windfury " + m.inner.Name()
	default:
		return m.inner.Name()
	}
}

func (m *Modified) Health() int           { return m.inner.Health() }
func (m *Modified) IsAlive() bool         { return m.inner.IsAlive() }
func (m *Modified) TakeDamage(amount int) { m.inner.TakeDamage(amount) }

// Attack runs the wrapped attack first, then applies this modifier's effect.
func (m *Modified) Attack(target Combatant) {
	m.inner.Attack(target)

	switch m.kind {
	case ModifierLegendary:
		m.log.Info("legendary enemy deals extra damage", "combatant", m.Name(), "damage", m.bonus)
		// Separate hit: the target's own armor or resistance applies to the bonus.
		target.TakeDamage(m.bonus)
	case ModifierWindfury:
		m.log.Info("windfury grants a second attack", "combatant", m.Name())
		m.inner.Attack(target)
	}
}

// IsModified reports whether c carries at least one modifier.
func IsModified(c Combatant) bool {
	_, ok := c.(*Modified)
	return ok
}

// Base strips every modifier and returns the innermost combatant.
func Base(c Combatant) Combatant {
	for {
		m, ok := c.(*Modified)
		if !ok {
			return c
		}
		c = m.inner
	}
}

// Modifiers lists the kinds wrapped around c, outermost first.
func Modifiers(c Combatant) []ModifierKind {
	var kinds []ModifierKind
	for {
		m, ok := c.(*Modified)
		if !ok {
			return kinds
		}
		kinds = append(kinds, m.kind)
		c = m.inner
	}
}

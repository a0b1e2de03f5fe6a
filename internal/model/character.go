package model

import (
	"math"
	"sync"
)

// Character — базовое состояние участника боя: имя и текущее здоровье.
// Hero, Enemy и EnchantedWeapon встраивают его и добавляют свою логику урона.
type Character struct {
	name   string
	health int

	mu sync.RWMutex
}

// NewCharacter создаёт участника боя с начальным здоровьем.
func NewCharacter(name string, health int) *Character {
	return &Character{
		name:   name,
		health: health,
	}
}

// Name возвращает отображаемое имя (immutable после создания).
func (c *Character) Name() string {
	return c.name
}

// Health возвращает текущее здоровье.
// Значение может уйти ниже нуля: урон не обрезается.
func (c *Character) Health() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.health
}

// IsAlive сообщает, жив ли участник (health > 0).
func (c *Character) IsAlive() bool {
	return c.Health() > 0
}

// ReduceHealth вычитает урон и возвращает оставшееся здоровье.
func (c *Character) ReduceHealth(damage int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.health -= damage
	return c.health
}

// SetHealth устанавливает здоровье напрямую (например, при рассеивании чар).
func (c *Character) SetHealth(health int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.health = health
}

// Mitigate applies a defense fraction to incoming damage.
// The result is rounded half to even and never negative.
func Mitigate(amount int, defense float64) int {
	reduced := int(math.RoundToEven(float64(amount) * (1 - defense)))
	return max(0, reduced)
}

// Package entity provides game entities, primarily the player.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkessler/gridquest/internal/gamedata"
)

const (
	baseXPToNextLevel = 100
	xpGrowthFactor    = 1.5
	notificationTTL   = 3 * time.Second
)

// Player is the player character: position on the current level, combat
// stats, progression, inventory and gold.
type Player struct {
	ID      uuid.UUID
	Name    string
	ClassID string
	Symbol  rune
	X, Y    int

	HP, MaxHP int
	Attack    int
	Defense   int
	Luck      int

	XP       int
	Level    int
	XPToNext int
	maxLevel int

	Gold          int
	maxGoldEarned int

	items []gamedata.ItemDef

	notification string
	notifiedAt   time.Time
}

// ItemStack is an inventory entry with duplicate items collapsed into a
// quantity.
type ItemStack struct {
	gamedata.ItemDef
	Quantity int
}

// NewPlayer creates a level-one player of the given class at position (0,0).
func NewPlayer(name string, class *gamedata.ClassDef) *Player {
	return &Player{
		ID:       uuid.New(),
		Name:     name,
		ClassID:  class.ID,
		Symbol:   class.SymbolRune(),
		HP:       class.HP,
		MaxHP:    class.HP,
		Attack:   class.Attack,
		Defense:  class.Defense,
		Luck:     class.Luck,
		Level:    1,
		maxLevel: 1,
		XPToNext: baseXPToNextLevel,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// SetPosition places the player at the given coordinates.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// IsAlive returns true while the player has hit points left.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// TakeDamage reduces HP and returns the actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}

// Heal restores HP up to the maximum and returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.HP+amount > p.MaxHP {
		amount = p.MaxHP - p.HP
	}
	p.HP += amount
	return amount
}

// AddXP grants experience, leveling up as many times as the thresholds allow.
func (p *Player) AddXP(amount int) {
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.levelUp()
	}
}

// levelUp consumes the current threshold and applies the stat gains: the
// threshold grows by half, max HP by 10 with a full heal, attack by 2 and
// defense by 1.
func (p *Player) levelUp() {
	p.XP -= p.XPToNext
	p.Level++
	if p.Level > p.maxLevel {
		p.maxLevel = p.Level
	}
	p.XPToNext = int(float64(p.XPToNext) * xpGrowthFactor)

	p.MaxHP += 10
	p.HP = p.MaxHP
	p.Attack += 2
	p.Defense++

	p.Notify(fmt.Sprintf("LEVEL UP! You are now level %d!", p.Level))
}

// MaxLevelReached returns the highest level the player has ever reached.
func (p *Player) MaxLevelReached() int {
	return p.maxLevel
}

// AddGold increases the player's gold and tracks the lifetime maximum.
func (p *Player) AddGold(amount int) {
	if p.Gold+amount > p.maxGoldEarned {
		p.maxGoldEarned = p.Gold + amount
	}
	p.Gold += amount
}

// SpendGold deducts the amount if the player can afford it.
func (p *Player) SpendGold(amount int) bool {
	if p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

// RemoveGold deducts gold, clamping at zero.
func (p *Player) RemoveGold(amount int) {
	p.Gold -= amount
	if p.Gold < 0 {
		p.Gold = 0
	}
}

// MaxGoldEarned returns the highest gold total the player has ever held.
func (p *Player) MaxGoldEarned() int {
	return p.maxGoldEarned
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(item gamedata.ItemDef) {
	p.items = append(p.items, item)
	p.Notify(fmt.Sprintf("Collected: %s!", item.Name))
}

// DropItem removes the item at the given inventory index.
func (p *Player) DropItem(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.items = append(p.items[:index], p.items[index+1:]...)
}

// Equip applies the stat effects of the item at the given index: HP is
// restored up to the maximum, attack and defense bonuses are permanent.
func (p *Player) Equip(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	item := p.items[index]

	if item.HP > 0 {
		p.Heal(item.HP)
	}
	p.Attack += item.Attack
	p.Defense += item.Defense
}

// IndexOf returns the index of the first held item with the given name, or
// -1 if none is held.
func (p *Player) IndexOf(name string) int {
	for i, item := range p.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// ItemCount returns the raw number of items held, duplicates included.
func (p *Player) ItemCount() int {
	return len(p.items)
}

// Inventory returns the held items with duplicates (by name) collapsed into
// quantities, preserving first-seen order.
func (p *Player) Inventory() []ItemStack {
	stacks := make([]ItemStack, 0, len(p.items))
	index := make(map[string]int, len(p.items))

	for _, item := range p.items {
		if i, ok := index[item.Name]; ok {
			stacks[i].Quantity++
			continue
		}
		index[item.Name] = len(stacks)
		stacks = append(stacks, ItemStack{ItemDef: item, Quantity: 1})
	}
	return stacks
}

// Notify shows a temporary notification message.
func (p *Player) Notify(message string) {
	p.notification = message
	p.notifiedAt = time.Now()
}

// Notification returns the current notification, or "" once it has expired.
func (p *Player) Notification() string {
	if p.notification == "" || time.Since(p.notifiedAt) >= notificationTTL {
		return ""
	}
	return p.notification
}

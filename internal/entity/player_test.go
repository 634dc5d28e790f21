package entity

import (
	"testing"
	"time"

	"github.com/mkessler/gridquest/internal/gamedata"
)

func testClass() *gamedata.ClassDef {
	return &gamedata.ClassDef{
		ID:      "rogue",
		Name:    "Rogue",
		Symbol:  "R",
		HP:      80,
		Attack:  15,
		Defense: 4,
		Luck:    8,
	}
}

func TestNewPlayerFromClass(t *testing.T) {
	p := NewPlayer("Vex", testClass())

	if p.Name != "Vex" || p.ClassID != "rogue" || p.Symbol != 'R' {
		t.Errorf("Unexpected identity: %+v", p)
	}
	if p.HP != 80 || p.MaxHP != 80 || p.Attack != 15 || p.Defense != 4 || p.Luck != 8 {
		t.Errorf("Unexpected stats: %+v", p)
	}
	if p.Level != 1 || p.XPToNext != 100 {
		t.Errorf("Unexpected progression: level %d, threshold %d", p.Level, p.XPToNext)
	}
	if p.ID.String() == "" {
		t.Error("Expected a player ID")
	}
}

func TestLevelUpProgression(t *testing.T) {
	p := NewPlayer("Vex", testClass())
	p.TakeDamage(30)

	p.AddXP(100)

	if p.Level != 2 {
		t.Fatalf("Expected level 2, got %d", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("Expected XP consumed, got %d", p.XP)
	}
	if p.XPToNext != 150 {
		t.Errorf("Expected threshold 150, got %d", p.XPToNext)
	}
	if p.MaxHP != 90 || p.HP != 90 {
		t.Errorf("Expected full heal at 90 max HP, got %d/%d", p.HP, p.MaxHP)
	}
	if p.Attack != 17 || p.Defense != 5 {
		t.Errorf("Expected attack 17 / defense 5, got %d/%d", p.Attack, p.Defense)
	}
	if p.Notification() == "" {
		t.Error("Expected a level-up notification")
	}
}

func TestMultiLevelUp(t *testing.T) {
	p := NewPlayer("Vex", testClass())

	// 100 + 150 = 250 crosses two thresholds at once.
	p.AddXP(260)

	if p.Level != 3 {
		t.Errorf("Expected level 3, got %d", p.Level)
	}
	if p.XP != 10 {
		t.Errorf("Expected 10 leftover XP, got %d", p.XP)
	}
	if p.MaxLevelReached() != 3 {
		t.Errorf("Expected max level 3, got %d", p.MaxLevelReached())
	}
}

func TestDamageAndHealClamping(t *testing.T) {
	p := NewPlayer("Vex", testClass())

	if taken := p.TakeDamage(200); taken != 80 {
		t.Errorf("Expected 80 damage taken, got %d", taken)
	}
	if p.IsAlive() {
		t.Error("Player should be dead at 0 HP")
	}

	if healed := p.Heal(500); healed != 80 {
		t.Errorf("Expected heal capped at 80, got %d", healed)
	}
	if p.HP != p.MaxHP {
		t.Errorf("Expected full HP, got %d/%d", p.HP, p.MaxHP)
	}

	if p.TakeDamage(-5) != 0 || p.Heal(-5) != 0 {
		t.Error("Negative amounts should be ignored")
	}
}

func TestGoldTracking(t *testing.T) {
	p := NewPlayer("Vex", testClass())

	p.AddGold(50)
	p.AddGold(70)
	if p.Gold != 120 || p.MaxGoldEarned() != 120 {
		t.Errorf("Unexpected gold: %d (max %d)", p.Gold, p.MaxGoldEarned())
	}

	if !p.SpendGold(100) {
		t.Error("Expected purchase to succeed")
	}
	if p.SpendGold(100) {
		t.Error("Expected purchase to fail with 20 gold left")
	}
	if p.MaxGoldEarned() != 120 {
		t.Errorf("Spending should not lower the lifetime max, got %d", p.MaxGoldEarned())
	}

	p.RemoveGold(999)
	if p.Gold != 0 {
		t.Errorf("Expected gold clamped at zero, got %d", p.Gold)
	}
}

func TestInventoryStacks(t *testing.T) {
	p := NewPlayer("Vex", testClass())
	potion := gamedata.ItemDef{ID: "health_potion", Name: "Health Potion", HP: 30}
	sword := gamedata.ItemDef{ID: "iron_sword", Name: "Iron Sword", Attack: 5}

	p.AddItem(potion)
	p.AddItem(sword)
	p.AddItem(potion)

	stacks := p.Inventory()
	if len(stacks) != 2 {
		t.Fatalf("Expected 2 stacks, got %d", len(stacks))
	}
	if stacks[0].Name != "Health Potion" || stacks[0].Quantity != 2 {
		t.Errorf("Unexpected first stack: %+v", stacks[0])
	}
	if stacks[1].Name != "Iron Sword" || stacks[1].Quantity != 1 {
		t.Errorf("Unexpected second stack: %+v", stacks[1])
	}

	if p.IndexOf("Iron Sword") != 1 {
		t.Errorf("Expected sword at index 1, got %d", p.IndexOf("Iron Sword"))
	}
	if p.IndexOf("Excalibur") != -1 {
		t.Error("Expected -1 for unheld item")
	}

	p.DropItem(0)
	if p.ItemCount() != 2 {
		t.Errorf("Expected 2 items after drop, got %d", p.ItemCount())
	}
}

func TestEquipEffects(t *testing.T) {
	p := NewPlayer("Vex", testClass())
	p.TakeDamage(50)
	p.AddItem(gamedata.ItemDef{ID: "health_potion", Name: "Health Potion", HP: 30})
	p.AddItem(gamedata.ItemDef{ID: "iron_sword", Name: "Iron Sword", Attack: 5, Defense: 1})

	p.Equip(0)
	if p.HP != 60 {
		t.Errorf("Expected 60 HP after potion, got %d", p.HP)
	}

	p.Equip(1)
	if p.Attack != 20 || p.Defense != 5 {
		t.Errorf("Expected attack 20 / defense 5, got %d/%d", p.Attack, p.Defense)
	}

	// Out-of-range indexes are ignored.
	p.Equip(99)
	p.DropItem(-1)
}

func TestNotificationExpiry(t *testing.T) {
	p := NewPlayer("Vex", testClass())

	p.Notify("Collected: Health Potion!")
	if p.Notification() != "Collected: Health Potion!" {
		t.Errorf("Unexpected notification: %q", p.Notification())
	}

	p.notifiedAt = time.Now().Add(-notificationTTL)
	if p.Notification() != "" {
		t.Error("Expected notification to expire")
	}
}

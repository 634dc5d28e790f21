package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mkessler/gridquest/internal/entity"
	"github.com/mkessler/gridquest/internal/gamedata"
	"github.com/mkessler/gridquest/internal/telemetry"
	"github.com/mkessler/gridquest/internal/ui"
	"github.com/mkessler/gridquest/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	rng      *rand.Rand

	classes *gamedata.ClassRegistry
	items   *gamedata.ItemRegistry
	systems *SystemRegistry

	level    *world.Level
	player   *entity.Player
	dialog   *ui.Dialog
	invMenu  *ui.Menu
	merchant struct{ x, y int }

	state   State
	running bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	classes, err := gamedata.LoadClassRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		rng:      rand.New(rand.NewSource(seed)),
		classes:  classes,
		items:    items,
		systems:  NewSystemRegistry(),
		state:    StateExplore,
		running:  true,
	}, nil
}

// Systems returns the registry so callers can plug in per-frame systems
// before Run.
func (g *Game) Systems() *SystemRegistry {
	return g.systems
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	if err := g.createPlayer(); err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	if err := g.buildWorld(ctx); err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	initSpan.SetAttributes(
		attribute.String("player.class", g.player.ClassID),
		attribute.String("level.name", g.level.Name),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	initSpan.End()

	for g.running {
		switch g.state {
		case StateExplore:
			g.renderer.Render(g.level, g.player)
		case StateInventory:
			g.renderInventory()
		case StateDialog:
			g.dialog.Render(g.screen)
		case StateGameOver:
			g.renderGameOver()
			g.screen.PollEvent()
			g.running = false
			continue
		}

		g.handleInput(ctx)
		g.systems.Update(ctx)

		if !g.player.IsAlive() {
			g.state = StateGameOver
		}
	}

	g.screen.Close()
	return nil
}

// createPlayer runs character creation, or builds the player straight from
// config when a name is preset.
func (g *Game) createPlayer() error {
	name := g.cfg.PlayerName
	classID := g.cfg.PlayerClass

	if name == "" {
		creation := ui.NewCharacterCreation(g.screen, g.classes)
		name, classID = creation.Run("=== GRIDQUEST ===")
	}

	class := g.classes.GetByID(classID)
	if class == nil {
		return fmt.Errorf("unknown class %q", classID)
	}

	g.player = entity.NewPlayer(name, class)
	g.player.AddGold(50)
	return nil
}

// buildWorld generates the two starting levels, links them with stairs,
// places the merchant and spawns the player.
func (g *Game) buildWorld(ctx context.Context) error {
	upper, err := g.generateLevel(ctx, "catacombs")
	if err != nil {
		return err
	}
	lower, err := g.generateLevel(ctx, "vaults")
	if err != nil {
		return err
	}

	ux, uy := findOpenCell(upper, upper.Width-2, upper.Height-2)
	lx, ly := findOpenCell(lower, 1, 1)
	upper.AddPortal(ux, uy, '>', world.Transition{
		Destination: lower,
		SpawnX:      lx,
		SpawnY:      ly,
		Message:     "You descend into the vaults...",
	})
	lower.AddPortal(lx, ly, '<', world.Transition{
		Destination: upper,
		SpawnX:      ux,
		SpawnY:      uy,
		Message:     "You climb back to the catacombs.",
	})

	// A merchant somewhere near the middle of the first level.
	mx, my := findOpenCell(upper, upper.Width/2, upper.Height/2)
	upper.SetRune(mx, my, '$')
	g.merchant.x, g.merchant.y = mx, my

	g.level = upper
	sx, sy := findOpenCell(upper, 1, 1)
	g.player.SetPosition(sx, sy)
	return nil
}

// generateLevel carves a fresh board with the game's rng and wraps it in a
// level.
func (g *Game) generateLevel(ctx context.Context, name string) (*world.Level, error) {
	board, err := world.NewBoard(g.cfg.BoardWidth, g.cfg.BoardHeight, g.rng)
	if err != nil {
		return nil, err
	}
	board.Generate(ctx)
	return world.NewLevelFromBoard(name, board), nil
}

// findOpenCell returns the walkable cell nearest to (x, y) in scan order,
// falling back to the requested position.
func findOpenCell(level *world.Level, x, y int) (int, int) {
	if !level.Blocked(x, y) {
		return x, y
	}
	for cy := 0; cy < level.Height; cy++ {
		for cx := 0; cx < level.Width; cx++ {
			if !level.Blocked(cx, cy) {
				return cx, cy
			}
		}
	}
	return x, y
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent routes keyboard input to the active state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch g.state {
	case StateDialog:
		g.dialog.HandleKey(ev)
		if !g.dialog.IsOpen() {
			g.state = StateExplore
		}
		return
	case StateInventory:
		g.handleInventoryKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			g.tryMove(0, -1)
		case 's', 'S':
			g.tryMove(0, 1)
		case 'a', 'A':
			g.tryMove(-1, 0)
		case 'd', 'D':
			g.tryMove(1, 0)
		case 'i', 'I':
			g.openInventory()
		}
	}
}

// tryMove attempts to move the player by the given delta, then checks for
// portals and the merchant at the new position.
func (g *Game) tryMove(dx, dy int) {
	newX := g.player.X + dx
	newY := g.player.Y + dy

	if g.level.Blocked(newX, newY) {
		return
	}
	g.player.Move(dx, dy)

	if t := g.level.PortalAt(newX, newY); t != nil {
		g.level = t.Destination
		g.player.SetPosition(t.SpawnX, t.SpawnY)
		if t.Message != "" {
			g.player.Notify(t.Message)
		}
		return
	}

	if newX == g.merchant.x && newY == g.merchant.y {
		g.openShop()
	}
}

// openShop builds the merchant dialog from the item registry.
func (g *Game) openShop() {
	g.dialog = ui.NewDialog(g.player)
	g.dialog.Message = "Welcome, traveler. Have a look at my wares."
	for _, def := range g.items.All() {
		def := def
		g.dialog.Items = append(g.dialog.Items, &ui.DialogItem{
			Name:        def.Name,
			Price:       def.Price,
			Description: def.Category,
			Action: func(*ui.DialogItem) {
				g.player.AddItem(def)
			},
		})
	}
	g.dialog.Open()
	g.state = StateDialog
}

// openInventory builds the inventory menu from the player's current stacks.
func (g *Game) openInventory() {
	g.invMenu = ui.NewMenu("INVENTORY", true)
	for _, stack := range g.player.Inventory() {
		stack := stack
		label := stack.Name
		if stack.Quantity > 1 {
			label = fmt.Sprintf("%s x%d", stack.Name, stack.Quantity)
		}
		g.invMenu.AddItem(label, func(*ui.MenuItem) {
			g.useItem(stack.ItemDef)
		})
	}
	if g.invMenu.Len() == 0 {
		empty := g.invMenu.AddItem("(nothing collected yet)", nil)
		empty.Selectable = false
	}
	g.state = StateInventory
}

// useItem applies an item's effects; consumables are used up.
func (g *Game) useItem(def gamedata.ItemDef) {
	index := g.player.IndexOf(def.Name)
	if index < 0 {
		return
	}
	g.player.Equip(index)
	if def.Category == "consumable" {
		g.player.DropItem(index)
	}
	g.player.Notify(fmt.Sprintf("Used: %s!", def.Name))
	g.state = StateExplore
}

func (g *Game) handleInventoryKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		g.state = StateExplore
		return
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'i' || ev.Rune() == 'I') {
		g.state = StateExplore
		return
	}
	g.invMenu.HandleKey(ev)
}

func (g *Game) renderInventory() {
	g.screen.Clear()
	g.invMenu.Render(g.screen, 2, 1, 40)
	g.renderer.RenderMessage("Enter: use item | I/Esc: close", g.invMenu.Len()+6)
	g.screen.Show()
}

// renderGameOver draws the defeat screen and flushes it.
func (g *Game) renderGameOver() {
	g.screen.Clear()
	_, height := g.screen.Size()
	mid := height / 2

	g.screen.DrawTextCentered(mid-2, "=== GAME OVER ===",
		tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	g.screen.DrawTextCentered(mid, "You have been defeated...",
		tcell.StyleDefault.Foreground(tcell.ColorYellow))
	g.screen.DrawTextCentered(mid+2, "Press any key to exit...",
		tcell.StyleDefault.Foreground(tcell.ColorWhite))
	g.screen.Show()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

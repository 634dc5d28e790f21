package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mkessler/gridquest/internal/telemetry"
)

// ErrInvalidDimensions is returned when a board is requested with a width or
// height below one.
var ErrInvalidDimensions = errors.New("board dimensions must be at least 1x1")

// Generation-internal cell states. They exist only between NewBoard and the
// finalization pass and are never visible on a finished board. The unvisited
// rune deliberately equals TileFloor: a region the carver never reached is
// left as open floor.
const (
	cellUnvisited rune = '.'
	cellCarved    rune = 'X'
	cellSealed    rune = 'O'
)

// Direction indices in their fixed priority order. The order matters for how
// blocked directions are enumerated; the actual pick is a rejection-sampled
// draw over all four.
const (
	dirDown = iota
	dirUp
	dirRight
	dirLeft
)

// position is a (row, column) cell address.
type position struct {
	y, x int
}

// step returns the neighboring position in the given direction.
func (p position) step(dir int) position {
	switch dir {
	case dirDown:
		return position{p.y + 1, p.x}
	case dirUp:
		return position{p.y - 1, p.x}
	case dirRight:
		return position{p.y, p.x + 1}
	default:
		return position{p.y, p.x - 1}
	}
}

// Board is a rectangular grid produced by the randomized depth-first carver.
// It is exclusively owned by the generating goroutine for the duration of
// Generate; concurrent mutation of the board or its random source is not
// supported.
type Board struct {
	Width  int
	Height int

	cells [][]rune
	rng   *rand.Rand

	start          position
	carveSteps     int
	backtrackSteps int
}

// NewBoard creates an ungenerated board with every cell unvisited. The rng is
// owned by the board for the run; passing the same seeded source reproduces
// the same layout. A nil rng gets a time-seeded source, making the run
// non-reproducible.
func NewBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = cellUnvisited
		}
	}

	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rng,
	}, nil
}

// Generate carves the board and finalizes it to the wall/floor alphabet.
// It runs to completion synchronously; termination is bounded by the cell
// count, so there is no cancellation path.
func (b *Board) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()

	b.carve()
	b.finalize()

	span.SetAttributes(
		attribute.Int("board.width", b.Width),
		attribute.Int("board.height", b.Height),
		attribute.Int("board.carve_steps", b.carveSteps),
		attribute.Int("board.backtrack_steps", b.backtrackSteps),
		attribute.Int64("board.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// carve runs the randomized depth-first walk. Cells are carved on the way
// forward and sealed while backtracking. The start cell and any cell carved
// while leaving backtrack mode are never pushed onto the stack, so they can
// never be sealed.
func (b *Board) carve() {
	cur := position{y: b.rng.Intn(b.Height), x: b.rng.Intn(b.Width)}
	b.start = cur
	b.cells[cur.y][cur.x] = cellCarved
	b.carveSteps++

	unvisited := b.Width*b.Height - 1
	stack := make([]position, 0, b.Width*b.Height)
	backtracking := false

	for unvisited > 0 {
		if backtracking {
			if len(stack) == 0 {
				return
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			b.cells[cur.y][cur.x] = cellSealed
			b.backtrackSteps++

			if next, ok := b.randomUnvisitedNeighbor(cur); ok {
				cur = next
				b.cells[cur.y][cur.x] = cellCarved
				b.carveSteps++
				unvisited--
				backtracking = false
			}
			continue
		}

		blocked := b.blockedDirections(cur)
		if len(blocked) == 4 {
			backtracking = true
			continue
		}

		// Rejection sampling: draw over all four directions and redraw while
		// blocked. Not equivalent to a uniform pick among the open subset for
		// the rng stream, and kept that way on purpose.
		dir := b.rng.Intn(4)
		for blockedContains(blocked, dir) {
			dir = b.rng.Intn(4)
		}

		cur = cur.step(dir)
		b.cells[cur.y][cur.x] = cellCarved
		b.carveSteps++
		unvisited--
		stack = append(stack, cur)
	}
}

// blockedDirections returns the directions, in priority order, that cannot be
// carved from p: out of bounds, or already carved or sealed.
func (b *Board) blockedDirections(p position) []int {
	blocked := make([]int, 0, 4)
	for dir := dirDown; dir <= dirLeft; dir++ {
		n := p.step(dir)
		if !b.inBounds(n) || b.cells[n.y][n.x] != cellUnvisited {
			blocked = append(blocked, dir)
		}
	}
	return blocked
}

// randomUnvisitedNeighbor picks uniformly among the unvisited neighbors of p.
func (b *Board) randomUnvisitedNeighbor(p position) (position, bool) {
	candidates := make([]position, 0, 4)
	for dir := dirDown; dir <= dirLeft; dir++ {
		n := p.step(dir)
		if b.inBounds(n) && b.cells[n.y][n.x] == cellUnvisited {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return position{}, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}

// finalize maps the generation states onto the public tile alphabet: carved
// cells become walls, sealed cells become floor, unreached cells are already
// the floor rune.
func (b *Board) finalize() {
	for y := range b.cells {
		for x := range b.cells[y] {
			switch b.cells[y][x] {
			case cellCarved:
				b.cells[y][x] = rune(TileWall)
			case cellSealed:
				b.cells[y][x] = rune(TileFloor)
			}
		}
	}
}

func (b *Board) inBounds(p position) bool {
	return p.y >= 0 && p.y < b.Height && p.x >= 0 && p.x < b.Width
}

func blockedContains(blocked []int, dir int) bool {
	for _, d := range blocked {
		if d == dir {
			return true
		}
	}
	return false
}

// Tile returns the tile at the given position. Out-of-bounds positions read
// as walls.
func (b *Board) Tile(x, y int) Tile {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return TileWall
	}
	return Tile(b.cells[y][x])
}

// IsPassable returns true if the given position can be walked on.
func (b *Board) IsPassable(x, y int) bool {
	return b.Tile(x, y).IsPassable()
}

// Start returns the cell the carver started from. It is always a wall on a
// finished board: the start cell is never pushed onto the backtrack stack, so
// it can never be sealed into floor.
func (b *Board) Start() (x, y int) {
	return b.start.x, b.start.y
}

// CarveSteps returns the number of cells carved during generation. Bounded by
// Width*Height.
func (b *Board) CarveSteps() int {
	return b.carveSteps
}

// BacktrackSteps returns the number of stack pops during generation. Bounded
// by Width*Height.
func (b *Board) BacktrackSteps() int {
	return b.backtrackSteps
}

// Rows returns a copy of the board's rows as rune slices, for building level
// buffers the caller is free to overlay.
func (b *Board) Rows() [][]rune {
	rows := make([][]rune, b.Height)
	for y := range rows {
		rows[y] = make([]rune, b.Width)
		copy(rows[y], b.cells[y])
	}
	return rows
}

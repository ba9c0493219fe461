// Package engine drives a game: it owns the board and takes turns asking a
// Player for moves and a Generator for new tiles, notifying a Viewer after
// every change.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twenty48/internal/game"
)

// Game owns one board and its optional collaborators.
// A Game is not safe for concurrent use.
type Game struct {
	state     *game.State
	viewer    game.Viewer
	generator game.Generator
	player    game.Player
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithViewer sets the viewer notified after every change.
func WithViewer(v game.Viewer) Option {
	return func(g *Game) { g.viewer = v }
}

// WithGenerator sets the agent that places new tiles.
func WithGenerator(gen game.Generator) Option {
	return func(g *Game) { g.generator = gen }
}

// WithPlayer sets the agent that chooses moves.
func WithPlayer(p game.Player) Option {
	return func(g *Game) { g.player = p }
}

// WithLogger sets the logger for turn-by-turn debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a game starting from a copy of s.
func New(s *game.State, opts ...Option) *Game {
	g := &Game{
		state:  s.Clone(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns a copy of the current board.
func (g *Game) State() *game.State {
	return g.state.Clone()
}

// Viewer returns the current viewer, or nil.
func (g *Game) Viewer() game.Viewer { return g.viewer }

// Generator returns the current generator, or nil.
func (g *Game) Generator() game.Generator { return g.generator }

// Player returns the current player, or nil.
func (g *Game) Player() game.Player { return g.player }

// SetViewer replaces the viewer and returns the previous one.
func (g *Game) SetViewer(v game.Viewer) game.Viewer {
	old := g.viewer
	g.viewer = v
	return old
}

// SetGenerator replaces the generator and returns the previous one.
func (g *Game) SetGenerator(gen game.Generator) game.Generator {
	old := g.generator
	g.generator = gen
	return old
}

// SetPlayer replaces the player and returns the previous one.
func (g *Game) SetPlayer(p game.Player) game.Player {
	old := g.player
	g.player = p
	return old
}

// Reset replaces the board with a copy of s and notifies the viewer.
func (g *Game) Reset(s *game.State) {
	g.state = s.Clone()
	g.logger.Debug("reset", "height", s.Height(), "width", s.Width())
	g.notify()
}

// Generate asks the generator for a placement and applies it. It returns
// false when there is no generator or the generator has no placement.
func (g *Game) Generate() (bool, error) {
	if g.generator == nil {
		return false, nil
	}
	p, ok, err := g.generator.Generate(g.state)
	if err != nil {
		return false, fmt.Errorf("engine: generate: %w", err)
	}
	if !ok {
		return false, nil
	}
	return g.Place(p)
}

// Play asks the player for a direction and applies it. It returns false when
// there is no player or the player has no move. A direction that does not
// change the board is an error.
func (g *Game) Play() (bool, error) {
	if g.player == nil {
		return false, nil
	}
	d, ok, err := g.player.Play(g.state)
	if err != nil {
		return false, fmt.Errorf("engine: play: %w", err)
	}
	if !ok {
		return false, nil
	}
	moved, err := g.Move(d)
	if err != nil {
		return false, err
	}
	if !moved {
		return false, fmt.Errorf("engine: player chose blocked move %s: %w", d, game.ErrInvalidOperation)
	}
	return true, nil
}

// Place puts a tile on the board and notifies the viewer.
func (g *Game) Place(p game.Placement) (bool, error) {
	if err := g.state.GenerateTile(p.Pos, p.Power); err != nil {
		return false, fmt.Errorf("engine: place %s: %w", p, err)
	}
	g.logger.Debug("placed", "tile", p)
	g.notify()
	return true, nil
}

// Move slides the board toward d. It returns false, leaving the board and the
// viewer untouched, when d would change nothing.
func (g *Game) Move(d game.Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("engine: move %s: %w", d, game.ErrInvalidArgument)
	}
	if !g.state.Move(d) {
		return false, nil
	}
	g.logger.Debug("moved", "dir", d)
	g.notify()
	return true, nil
}

func (g *Game) notify() {
	if g.viewer != nil {
		g.viewer.Update(g.state.Clone())
	}
}

// RunOptions bounds a self-play run.
type RunOptions struct {
	// InitialTiles are generated before the first move.
	InitialTiles int
	// MaxMoves stops the run after this many moves. Zero means no limit.
	MaxMoves int
}

// Result summarises a finished run.
type Result struct {
	Moves   int
	MaxTile game.Tile
	Final   *game.State
}

// Run plays the game to the end: InitialTiles generations, then alternating
// moves and generations until the player has no move, MaxMoves is reached or
// ctx is done. The result is returned alongside ctx's error in the last case.
func (g *Game) Run(ctx context.Context, opts RunOptions) (Result, error) {
	for range opts.InitialTiles {
		if _, err := g.Generate(); err != nil {
			return g.result(0), err
		}
	}

	moves := 0
	for opts.MaxMoves <= 0 || moves < opts.MaxMoves {
		if err := ctx.Err(); err != nil {
			return g.result(moves), err
		}
		ok, err := g.Play()
		if err != nil {
			return g.result(moves), err
		}
		if !ok {
			break
		}
		moves++
		if _, err := g.Generate(); err != nil {
			return g.result(moves), err
		}
	}

	res := g.result(moves)
	g.logger.Info("game finished", "moves", res.Moves, "max_tile", res.MaxTile.Value())
	return res, nil
}

func (g *Game) result(moves int) Result {
	return Result{
		Moves:   moves,
		MaxTile: g.state.MaxTile(),
		Final:   g.state.Clone(),
	}
}

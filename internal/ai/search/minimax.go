// Package search implements a fixed-depth negamax search that plays both
// sides of 2048: the player choosing a direction and the generator choosing
// where the next tile lands.
//
// No pruning is performed. Every ply enumerates all choices in a fixed order
// and the first strictly better choice wins ties, so results depend only on
// the board, the evaluation function and the ply count.
package search

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Minimax is a Player and a Generator backed by negamax search.
//
// SetEval and SetPly must not be called while a search is running.
type Minimax struct {
	fn      eval.Function
	ply     uint
	workers int
	logger  *log.Logger
}

var (
	_ game.Player    = (*Minimax)(nil)
	_ game.Generator = (*Minimax)(nil)
)

// Option configures a Minimax.
type Option func(*Minimax)

// WithWorkers searches the root choices on up to n goroutines. Values of n
// below 2 search sequentially. The chosen move is the same either way.
func WithWorkers(n int) Option {
	return func(m *Minimax) {
		m.workers = n
	}
}

// WithLogger sets the logger used for per-search debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Minimax) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a searcher that looks ply actor-turns ahead using fn.
func New(fn eval.Function, ply uint, opts ...Option) (*Minimax, error) {
	if fn == nil {
		return nil, fmt.Errorf("search: nil evaluation function: %w", game.ErrInvalidArgument)
	}
	m := &Minimax{
		fn:      fn,
		ply:     ply,
		workers: 1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Eval returns the evaluation function.
func (m *Minimax) Eval() eval.Function { return m.fn }

// Ply returns the search depth in actor-turns.
func (m *Minimax) Ply() uint { return m.ply }

// SetEval replaces the evaluation function and returns the previous one.
// fn must not be nil.
func (m *Minimax) SetEval(fn eval.Function) eval.Function {
	if fn == nil {
		panic("search: nil evaluation function")
	}
	old := m.fn
	m.fn = fn
	return old
}

// SetPly replaces the search depth and returns the previous one.
func (m *Minimax) SetPly(ply uint) uint {
	old := m.ply
	m.ply = ply
	return old
}

// Play returns the direction with the best negamax value. With a ply of 0 it
// returns the first possible direction without searching.
func (m *Minimax) Play(s *game.State) (game.Direction, bool, error) {
	moves := s.PossibleMoves()
	if len(moves) == 0 {
		return 0, false, nil
	}
	if m.ply == 0 {
		return moves[0], true, nil
	}
	scores, err := m.scoreMoves(s, moves, m.ply)
	if err != nil {
		return 0, false, err
	}
	return moves[best(scores)], true, nil
}

// Generate returns the placement with the best negamax value for the
// generator, i.e. the worst for the player. With a ply of 0 it returns the
// first empty cell with a 2 tile without searching.
func (m *Minimax) Generate(s *game.State) (game.Placement, bool, error) {
	empties := s.EmptyPositions()
	if len(empties) == 0 {
		return game.Placement{}, false, nil
	}
	if m.ply == 0 {
		return game.Placement{Pos: empties[0], Power: 1}, true, nil
	}
	placements := placementsFor(empties)
	scores, err := m.scorePlacements(s, placements, m.ply)
	if err != nil {
		return game.Placement{}, false, err
	}
	return placements[best(scores)], true, nil
}

// MoveScore is the negamax value of one root direction.
type MoveScore struct {
	Dir   game.Direction
	Score int64
}

// PlacementScore is the negamax value of one root placement, from the
// generator's point of view.
type PlacementScore struct {
	Placement game.Placement
	Score     int64
}

// ScoreMoves returns the value of every possible direction in PossibleMoves
// order. A ply of 0 is searched as 1.
func (m *Minimax) ScoreMoves(s *game.State) ([]MoveScore, error) {
	moves := s.PossibleMoves()
	scores, err := m.scoreMoves(s, moves, max(m.ply, 1))
	if err != nil {
		return nil, err
	}
	out := make([]MoveScore, len(moves))
	for i, d := range moves {
		out[i] = MoveScore{Dir: d, Score: scores[i]}
	}
	return out, nil
}

// ScorePlacements returns the value of every placement in enumeration order:
// row-major positions, a 2 tile before a 4 tile. A ply of 0 is searched as 1.
func (m *Minimax) ScorePlacements(s *game.State) ([]PlacementScore, error) {
	placements := placementsFor(s.EmptyPositions())
	scores, err := m.scorePlacements(s, placements, max(m.ply, 1))
	if err != nil {
		return nil, err
	}
	out := make([]PlacementScore, len(placements))
	for i, p := range placements {
		out[i] = PlacementScore{Placement: p, Score: scores[i]}
	}
	return out, nil
}

func (m *Minimax) scoreMoves(s *game.State, moves []game.Direction, ply uint) ([]int64, error) {
	sr := &searcher{fn: m.fn}
	start := time.Now()
	scores, err := m.expand(len(moves), func(i int) (int64, error) {
		next := s.Clone()
		mustMove(next, moves[i])
		v, err := sr.generatorValue(next, ply-1)
		return -v, err
	})
	if err != nil {
		return nil, err
	}
	m.logger.Debug("searched moves", "ply", ply, "choices", len(moves),
		"nodes", sr.nodes.Load(), "elapsed", time.Since(start))
	return scores, nil
}

func (m *Minimax) scorePlacements(s *game.State, placements []game.Placement, ply uint) ([]int64, error) {
	sr := &searcher{fn: m.fn}
	start := time.Now()
	scores, err := m.expand(len(placements), func(i int) (int64, error) {
		next := s.Clone()
		mustGenerate(next, placements[i])
		v, err := sr.playerValue(next, ply-1)
		return -v, err
	})
	if err != nil {
		return nil, err
	}
	m.logger.Debug("searched placements", "ply", ply, "choices", len(placements),
		"nodes", sr.nodes.Load(), "elapsed", time.Since(start))
	return scores, nil
}

// expand computes value(i) for every root choice. Each result lands in its own
// slot, so the order seen by best does not depend on scheduling.
func (m *Minimax) expand(n int, value func(i int) (int64, error)) ([]int64, error) {
	scores := make([]int64, n)
	if m.workers < 2 || n < 2 {
		for i := range n {
			v, err := value(i)
			if err != nil {
				return nil, err
			}
			scores[i] = v
		}
		return scores, nil
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range n {
		g.Go(func() error {
			v, err := value(i)
			if err != nil {
				return err
			}
			scores[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// best returns the index of the first strictly greatest score.
func best(scores []int64) int {
	idx, top := 0, eval.NegInf
	for i, v := range scores {
		if v > top {
			idx, top = i, v
		}
	}
	return idx
}

func placementsFor(empties []game.Position) []game.Placement {
	out := make([]game.Placement, 0, 2*len(empties))
	for _, pos := range empties {
		for power := uint8(1); power <= 2; power++ {
			out = append(out, game.Placement{Pos: pos, Power: power})
		}
	}
	return out
}

// searcher holds the state of one search call.
type searcher struct {
	fn    eval.Function
	nodes atomic.Int64
}

// playerValue is the value of s for the player to move.
func (sr *searcher) playerValue(s *game.State, ply uint) (int64, error) {
	sr.nodes.Add(1)
	if ply == 0 {
		return sr.fn.Evaluate(s)
	}

	moves := s.PossibleMoves()
	if len(moves) == 0 {
		return eval.GameOver - int64(ply), nil
	}

	value := eval.NegInf
	for _, d := range moves {
		next := s.Clone()
		mustMove(next, d)
		v, err := sr.generatorValue(next, ply-1)
		if err != nil {
			return 0, err
		}
		if -v > value {
			value = -v
		}
	}
	return value, nil
}

// generatorValue is the value of s for the generator to place, which is
// the negated player value.
func (sr *searcher) generatorValue(s *game.State, ply uint) (int64, error) {
	sr.nodes.Add(1)
	if ply == 0 {
		v, err := sr.fn.Evaluate(s)
		return -v, err
	}

	empties := s.EmptyPositions()
	if len(empties) == 0 {
		v, err := sr.playerValue(s, ply-1)
		return -v, err
	}

	value := eval.NegInf
	for _, pos := range empties {
		for power := uint8(1); power <= 2; power++ {
			next := s.Clone()
			mustGenerate(next, game.Placement{Pos: pos, Power: power})
			v, err := sr.playerValue(next, ply-1)
			if err != nil {
				return 0, err
			}
			if -v > value {
				value = -v
			}
		}
	}
	return value, nil
}

func mustMove(s *game.State, d game.Direction) {
	if !s.Move(d) {
		panic(fmt.Sprintf("search: possible move %s cannot be applied to %s", d, s))
	}
}

func mustGenerate(s *game.State, p game.Placement) {
	if err := s.GenerateTile(p.Pos, p.Power); err != nil {
		panic(fmt.Sprintf("search: empty position %s cannot take a tile: %v", p.Pos, err))
	}
}

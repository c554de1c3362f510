// Package engine is the facade over the rules engine and search package:
// configuration, move computation and cooperative abort (spec.md §4.4).
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/joansala/owarego/pkg/oware"
	"github.com/joansala/owarego/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(1, 0, 0)

// Options are the engine's runtime-configurable search bounds.
type Options struct {
	// Depth is the maximum search depth in plies. Always >= search.MinDepth
	// and even; SetDepth enforces this.
	Depth int
	// MoveTime is the wall-clock budget for a single ComputeBestMove call.
	MoveTime time.Duration
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, moveTime=%v}", o.Depth, o.MoveTime)
}

// Engine encapsulates the rules engine and the iterative-deepening search,
// under a configuration guarded by a mutex so StopComputation and the setters
// are safe to call from any goroutine while a computation is in flight.
type Engine struct {
	name, author string

	rules  *oware.Rules
	driver *search.IterativeDeepening

	mu   sync.Mutex
	opts Options
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the engine's initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New builds an engine over a fresh rules-and-tables instance.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	rules := oware.NewRules()

	e := &Engine{
		name:   name,
		author: author,
		rules:  rules,
		driver: search.NewIterativeDeepening(rules),
		opts: Options{
			Depth:    search.MinDepth,
			MoveTime: 2 * time.Second,
		},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.opts.Depth = clampDepth(e.opts.Depth)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Options returns the engine's current configuration.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// SetDepth sets the maximum search depth: clamped to at least
// search.MinDepth, then rounded up to the next even value (spec.md §4.4).
func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = clampDepth(depth)
}

func clampDepth(depth int) int {
	if depth < search.MinDepth {
		return search.MinDepth
	}
	return depth + depth%2
}

// SetMoveTime sets the per-move wall-clock budget. Returns InvalidConfig if
// moveTime is not positive (spec.md §7).
func (e *Engine) SetMoveTime(moveTime time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if moveTime <= 0 {
		return &oware.InvalidConfig{Field: "moveTime", Value: moveTime}
	}
	e.opts.MoveTime = moveTime
	return nil
}

// ComputeBestMove runs the configured search from board/turn and returns the
// chosen move, or oware.NullMove if turn has no legal move. moveTime, when
// set, overrides the engine's configured move time for this call only,
// mirroring the teacher's per-call DepthLimit override. history is the prefix
// of previously reached positions (the line of play to seed the repetition
// set with), oldest first.
func (e *Engine) ComputeBestMove(ctx context.Context, board oware.Board, turn oware.Side, moveTime lang.Optional[time.Duration], history ...oware.Board) oware.Move {
	e.mu.Lock()
	opts := e.opts
	e.mu.Unlock()

	budget := opts.MoveTime
	if v, ok := moveTime.V(); ok {
		budget = v
	}

	logw.Infof(ctx, "ComputeBestMove %v turn=%v depth=%v moveTime=%v", oware.ToBoardNotation(board, turn), turn, opts.Depth, budget)

	move := e.driver.Search(ctx, board, turn, opts.Depth, budget, history)

	logw.Infof(ctx, "ComputeBestMove: %v", move)
	return move
}

// StopComputation asynchronously raises the abort flag of the search in
// flight. Safe to call from any goroutine at any time; a flag raised while no
// search runs is cleared when the next search starts.
func (e *Engine) StopComputation() {
	e.driver.Flag().Set()
}

// Rules exposes the underlying rules engine, e.g. for move application outside
// of search.
func (e *Engine) Rules() *oware.Rules {
	return e.rules
}

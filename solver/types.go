package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

var (
	// ErrUnknownKind indicates an algorithm name or Kind that does not exist.
	ErrUnknownKind = errors.New("solver: unknown algorithm")
	// ErrNilMaze indicates a nil maze.
	ErrNilMaze = errors.New("solver: maze is nil")
	// ErrNoPath indicates the exit is unreachable. On a maze produced by a
	// generator this is a broken invariant, not an expected outcome.
	ErrNoPath = errors.New("solver: no path from entrance to exit")
)

// Kind selects a search algorithm.
type Kind uint8

const (
	// DepthFirst is depth-first backtracking; the final stack is the path.
	DepthFirst Kind = iota
	// AStar is A* with the Manhattan distance to the exit as heuristic.
	AStar
)

var kindNames = [...]string{
	DepthFirst: "depth_first_search",
	AStar:      "a_star",
}

// Kinds returns every algorithm in declaration order.
func Kinds() []Kind {
	return []Kind{DepthFirst, AStar}
}

// String returns the command-line name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("solver(%d)", uint8(k))
}

// ParseKind maps a command-line name to its Kind. Matching ignores case and
// accepts '-' in place of '_'.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Search is a solver paused between steps. Path is valid once Step has
// reported done without error.
type Search interface {
	runner.Stepper
	// Path returns the cells from entrance to exit, both included.
	Path() []maze.Cell
	// Expanded returns how many distinct cells the search has expanded so far.
	Expanded() int
}

// Result is the outcome of Solve.
type Result struct {
	Kind     Kind
	Path     []maze.Cell // entrance to exit, both included
	Steps    int         // moves along the path, len(Path)-1
	Expanded int         // cells expanded by the search
	Ticks    int         // driver steps, search and trace phases together
}

// Options configures Solve.
type Options struct {
	// Trace marks every expanded cell with maze.GlyphDot.
	Trace bool
	// Sink receives change events; nil discards them.
	Sink maze.Sink
	// Run holds driver options forwarded to runner.Run.
	Run []runner.Option
}

// Option configures Options.
type Option func(*Options)

// WithTrace marks expanded cells during the search.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithSink routes change events to s.
func WithSink(s maze.Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// WithRunOptions forwards pacing, hooks and logging to the driver.
func WithRunOptions(opts ...runner.Option) Option {
	return func(o *Options) {
		o.Run = append(o.Run, opts...)
	}
}

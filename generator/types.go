package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

// Sentinel errors for generator dispatch.
var (
	// ErrUnknownKind indicates an algorithm name or Kind that does not exist.
	ErrUnknownKind = errors.New("generator: unknown algorithm")
	// ErrNilMaze indicates a nil maze.
	ErrNilMaze = errors.New("generator: maze is nil")
	// ErrNilRand indicates a nil randomness source.
	ErrNilRand = errors.New("generator: random source is nil")
	// ErrNotWalled indicates a maze that already has open internal walls.
	ErrNotWalled = errors.New("generator: maze must be fully walled")
)

// Kind selects a carving algorithm.
type Kind uint8

const (
	// DepthFirst is randomized depth-first carving.
	DepthFirst Kind = iota
	// BreadthFirst is randomized carving with a reshuffled frontier stack.
	BreadthFirst
	// Kruskal is randomized Kruskal over a union-find of cells.
	Kruskal
)

var kindNames = [...]string{
	DepthFirst:   "depth_first_search",
	BreadthFirst: "breadth_first_search",
	Kruskal:      "kruskal",
}

// Kinds returns every algorithm in declaration order.
func Kinds() []Kind {
	return []Kind{DepthFirst, BreadthFirst, Kruskal}
}

// String returns the command-line name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("generator(%d)", uint8(k))
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

// Options configures Generate.
type Options struct {
	// Sink receives change events; nil discards them.
	Sink maze.Sink
	// Run holds driver options forwarded to runner.Run.
	Run []runner.Option
}

// Option configures Options.
type Option func(*Options)

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

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/runner"
	"github.com/katalvlaran/labyrinth/solver"
)

// app carries what every subcommand needs once the configuration is loaded.
type app struct {
	stdout, stderr io.Writer
	envFile        string
	cfg            *config.Config
	log            *logrus.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var (
		req     config.Request
		delayMS int
	)

	cmd := &cobra.Command{
		Use:   "maze [ROWS COLUMNS]",
		Short: "Generate, animate and solve perfect mazes",
		Long: "maze carves a random perfect maze of ROWS×COLUMNS cells, animating every step in the\n" +
			"terminal, and optionally solves it. With --input it loads a maze from a text file instead.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseSize(args, &req); err != nil {
				return err
			}
			req.Delay = a.cfg.Delay
			if cmd.Flags().Changed("delay") {
				req.Delay = time.Duration(delayMS) * time.Millisecond
			}
			if !cmd.Flags().Changed("seed") {
				req.Seed = time.Now().UnixNano()
			}
			plan, err := req.Validate(a.cfg.Algorithm, a.cfg.MaxCells)
			if err != nil {
				return err
			}

			return a.run(cmd.Context(), plan)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.Algorithm, "algorithm", "a", "", "generator: depth_first_search, breadth_first_search or kruskal (default from MAZE_ALGORITHM)")
	f.StringVarP(&req.Solver, "solver", "s", "", "solve with depth_first_search or a_star")
	f.BoolVarP(&req.Trace, "trace", "t", false, "mark every cell the solver expands")
	f.IntVarP(&delayMS, "delay", "d", 0, "milliseconds between animation steps (default from MAZE_DELAY_MS)")
	f.StringVarP(&req.Input, "input", "i", "", "load the maze from a text file instead of generating it")
	f.StringVarP(&req.Output, "output", "o", "", "write the final maze in text form to a file")
	f.Int64Var(&req.Seed, "seed", 0, "random seed; the same seed gives the same maze")
	f.BoolVar(&req.Instant, "instant", false, "skip the animation and print the result")
	f.BoolVar(&req.Stats, "stats", false, "print dead ends, junctions and path lengths after the maze")
	cmd.PersistentFlags().StringVar(&a.envFile, "env", ".env", "dotenv file to load before reading the environment")

	cmd.AddCommand(newServeCmd(a), newTokenCmd(a))

	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetOutput(a.stderr)
	a.log.SetLevel(cfg.LogLevel)
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return nil
}

// parseSize reads the ROWS and COLUMNS arguments.
func parseSize(args []string, req *config.Request) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: expected ROWS and COLUMNS, got one argument", config.ErrInvalidConfig)
	}
	dims := [2]*int{&req.Rows, &req.Columns}
	for i, name := range [2]string{"ROWS", "COLUMNS"} {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", config.ErrInvalidConfig, name, args[i])
		}
		*dims[i] = n
	}

	return nil
}

// run builds or loads the maze, animates generation and solving unless the
// plan is instant, and writes the requested outputs.
func (a *app) run(ctx context.Context, p *config.Plan) error {
	// 1. The maze.
	var (
		m   *maze.Maze
		err error
	)
	if p.Generate {
		m, err = maze.NewWalled(p.Rows, p.Columns)
	} else if m, err = maze.ParseFile(p.Input); err == nil {
		err = m.Verify()
	}
	if err != nil {
		return err
	}

	// 2. Output: a live terminal, or nothing until the end.
	var (
		sink     maze.Sink
		term     *render.Terminal
		finished bool
	)
	runOpts := []runner.Option{runner.WithLogger(a.log)}
	if !p.Instant {
		term = render.NewTerminal(a.stdout, m)
		if err = term.Draw(); err != nil {
			return err
		}
		// restore the cursor when a step fails or ctx is cancelled
		defer func() {
			if !finished {
				_ = term.Finish()
			}
		}()
		sink = term
		runOpts = append(runOpts, runner.WithDelay(p.Delay))
	}

	// 3. Generation.
	if p.Generate {
		rng := rand.New(rand.NewSource(p.Seed))
		steps, err := generator.Generate(ctx, m, p.GeneratorKind, rng,
			generator.WithSink(sink), generator.WithRunOptions(runOpts...))
		if err != nil {
			return err
		}
		if err = m.Verify(); err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{
			"algorithm": p.GeneratorKind.String(),
			"rows":      p.Rows,
			"columns":   p.Columns,
			"seed":      p.Seed,
			"steps":     steps,
		}).Debug("maze generated")
	}

	// 4. Solving.
	if p.Solve {
		opts := []solver.Option{solver.WithSink(sink), solver.WithRunOptions(runOpts...)}
		if p.Trace {
			opts = append(opts, solver.WithTrace())
		}
		res, err := solver.Solve(ctx, m, p.SolverKind, opts...)
		if err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{
			"solver":   p.SolverKind.String(),
			"steps":    res.Steps,
			"expanded": res.Expanded,
		}).Debug("maze solved")
	}

	// 5. Results.
	if term != nil {
		finished = true
		if err = term.Finish(); err != nil {
			return err
		}
	} else if _, err = io.WriteString(a.stdout, render.Frame(m)); err != nil {
		return err
	}
	if p.Stats {
		s := m.Stats()
		_, err = fmt.Fprintf(a.stdout, "cells=%d dead_ends=%d corridors=%d junctions=%d solution=%d longest=%d\n",
			s.Cells, s.DeadEnds, s.Corridors, s.Junctions, s.Solution, s.Longest)
		if err != nil {
			return err
		}
	}
	if p.Output != "" {
		return writeMaze(p.Output, m)
	}

	return nil
}

func writeMaze(path string, m *maze.Maze) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = m.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

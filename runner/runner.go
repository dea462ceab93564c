// Package runner drives step-wise algorithms to completion.
//
// Generators and solvers expose one iteration of their main loop as Step.
// Run calls Step until it reports done, and between iterations it is the only
// place that waits (WithDelay), observes cancellation (ctx) or calls user
// hooks (WithOnStep). The algorithms themselves never sleep, which keeps them
// testable without timing dependencies.
//
// Options:
//
//   - WithDelay(d)      wait d between steps; zero means run instantly.
//   - WithOnStep(fn)    call fn after every step; an error aborts the run.
//   - WithMaxSteps(n)   abort with ErrStepLimit after n steps.
//   - WithLogger(l)     debug-level progress logging.
//
// Errors:
//
//   - ErrNilStepper if s is nil.
//   - ErrStepLimit  if MaxSteps is exceeded.
//   - ctx.Err()     when the context is done at the top of an iteration.
//   - any error returned by Step or OnStep, wrapped.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNilStepper indicates Run was given no stepper.
	ErrNilStepper = errors.New("runner: stepper is nil")
	// ErrStepLimit indicates the run did not finish within MaxSteps.
	ErrStepLimit = errors.New("runner: step limit exceeded")
)

// Stepper is one algorithm paused between iterations of its main loop.
type Stepper interface {
	// Step performs one iteration and reports whether the algorithm finished.
	Step() (done bool, err error)
}

// StepFunc adapts a function to Stepper.
type StepFunc func() (bool, error)

// Step calls f.
func (f StepFunc) Step() (bool, error) { return f() }

// Options holds the driver settings for Run.
type Options struct {
	// Delay is the pause before every step after the first. Zero disables pacing.
	Delay time.Duration

	// OnStep, if non-nil, is called with the 1-based step count after each step.
	OnStep func(n int) error

	// MaxSteps, if positive, bounds the number of steps.
	MaxSteps int

	// Logger receives debug-level progress; defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns instant, unbounded, silent settings.
func DefaultOptions() Options {
	return Options{Logger: discardLogger()}
}

// WithDelay sets the pause between steps. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		o.Delay = max(d, 0)
	}
}

// WithOnStep installs a hook called after each step.
func WithOnStep(fn func(n int) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps bounds the number of steps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithLogger sets the progress logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return l
}

// Run steps s until it reports done and returns the number of steps taken.
// Context cancellation is observed at the top of every iteration and during
// the pacing delay.
func Run(ctx context.Context, s Stepper, opts ...Option) (int, error) {
	// 1. Validate and apply options.
	if s == nil {
		return 0, ErrNilStepper
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var timer *time.Timer
	if cfg.Delay > 0 {
		timer = time.NewTimer(cfg.Delay)
		defer timer.Stop()
	}

	start := time.Now()
	steps := 0
	for {
		// 2. Interruption point.
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if cfg.MaxSteps > 0 && steps >= cfg.MaxSteps {
			return steps, fmt.Errorf("%w: %d", ErrStepLimit, cfg.MaxSteps)
		}

		// 3. Pacing.
		if timer != nil && steps > 0 {
			select {
			case <-ctx.Done():
				return steps, ctx.Err()
			case <-timer.C:
			}
			timer.Reset(cfg.Delay)
		}

		// 4. One iteration.
		done, err := s.Step()
		steps++
		if err != nil {
			return steps, fmt.Errorf("runner: step %d: %w", steps, err)
		}
		if cfg.OnStep != nil {
			if err = cfg.OnStep(steps); err != nil {
				return steps, fmt.Errorf("runner: OnStep hook at step %d: %w", steps, err)
			}
		}
		if done {
			cfg.Logger.WithFields(logrus.Fields{
				"steps":   steps,
				"elapsed": time.Since(start),
			}).Debug("run finished")

			return steps, nil
		}
	}
}

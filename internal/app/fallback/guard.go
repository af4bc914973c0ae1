// Package fallback decides, per operation, whether a failed backend call is
// answered from the local fallback store, and records when that happened.
//
// The remote source is always tried first. If it fails and the operation is
// covered, the local source answers instead and its result (including its own
// errors, e.g. ErrNotFound) becomes the result. Uncovered operations return the
// remote error unchanged.
//
// An optional circuit breaker skips the backend after repeated unavailability.
// It is disabled unless Options.BreakerThreshold > 0.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

var (
	ErrNotFound    = source.ErrNotFound
	ErrUnavailable = source.ErrUnavailable
	ErrValidation  = source.ErrValidation

	// ErrBreakerOpen is returned by uncovered operations while the breaker is open.
	ErrBreakerOpen = fmt.Errorf("circuit breaker open: %w", source.ErrUnavailable)
)

const DefaultBreakerCooldown = 30 * time.Second

type Mode string

const (
	ModeOnline   Mode = "online"
	ModeDegraded Mode = "degraded"
)

// Op names an operation. Write marks operations that mutate the local store when they fall back.
type Op struct {
	Name  string
	Write bool
}

// Coverage maps operation names to whether they fall back.
type Coverage map[string]bool

type Options struct {
	// Coverage overrides the service defaults per operation name.
	Coverage Coverage

	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// Status is a snapshot of a Guard's state.
type Status struct {
	Source              string
	Mode                Mode
	BreakerOpen         bool
	ConsecutiveFailures int
	FallbackReads       int
	FallbackWrites      int
	// Diverged is set once a fallback write has succeeded against the local store.
	Diverged       bool
	LastError      string
	LastFallbackAt time.Time
}

// Guard is safe for concurrent use.
type Guard struct {
	name      string
	coverage  Coverage
	threshold int
	cooldown  time.Duration
	log       *zap.Logger
	clk       clock.Clock

	mu       sync.Mutex
	st       Status
	openedAt time.Time
	trial    bool
}

func NewGuard(name string, defaults Coverage, opts Options, log *zap.Logger, clk clock.Clock) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	cov := make(Coverage, len(defaults)+len(opts.Coverage))
	for k, v := range defaults {
		cov[k] = v
	}
	for k, v := range opts.Coverage {
		cov[k] = v
	}
	cooldown := opts.BreakerCooldown
	if cooldown <= 0 {
		cooldown = DefaultBreakerCooldown
	}
	return &Guard{
		name:      name,
		coverage:  cov,
		threshold: opts.BreakerThreshold,
		cooldown:  cooldown,
		log:       log.With(zap.String("source", name)),
		clk:       clk,
		st:        Status{Source: name, Mode: ModeOnline},
	}
}

func (g *Guard) Covers(op string) bool { return g.coverage[op] }

func (g *Guard) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st
}

// Do runs remote, substituting local on failure when op is covered.
func Do[T any](ctx context.Context, g *Guard, op Op, remote, local func(context.Context) (T, error)) (T, error) {
	covered := g.Covers(op.Name)

	if !g.allow() {
		if covered {
			return runLocal(ctx, g, op, ErrBreakerOpen, local)
		}
		var zero T
		return zero, fmt.Errorf("%s %s: %w", g.name, op.Name, ErrBreakerOpen)
	}

	v, err := remote(ctx)
	g.observe(err)
	if err == nil || !covered {
		return v, err
	}
	return runLocal(ctx, g, op, err, local)
}

// Exec is Do for operations without a result.
func Exec(ctx context.Context, g *Guard, op Op, remote, local func(context.Context) error) error {
	_, err := Do(ctx, g, op,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, remote(ctx) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, local(ctx) },
	)
	return err
}

func runLocal[T any](ctx context.Context, g *Guard, op Op, cause error, local func(context.Context) (T, error)) (T, error) {
	v, err := local(ctx)

	g.mu.Lock()
	if op.Write {
		g.st.FallbackWrites++
		if err == nil {
			g.st.Diverged = true
		}
	} else {
		g.st.FallbackReads++
	}
	g.st.LastFallbackAt = g.clk.Now()
	g.mu.Unlock()

	g.log.Warn("backend unavailable, using fallback data",
		zap.String("op", op.Name),
		zap.Bool("write", op.Write),
		zap.Error(cause),
	)
	return v, err
}

// allow reports whether the backend should be called. While the breaker is open
// one trial call is let through per cooldown period.
func (g *Guard) allow() bool {
	if g.threshold <= 0 {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.st.ConsecutiveFailures < g.threshold {
		return true
	}
	if g.trial || g.clk.Now().Sub(g.openedAt) < g.cooldown {
		return false
	}
	g.trial = true
	return true
}

// observe records the outcome of a backend call. Only unavailability counts
// against the breaker; a 404 or 422 proves the backend is reachable.
func (g *Guard) observe(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.st.LastError = err.Error()
	}
	if err == nil || !errors.Is(err, ErrUnavailable) {
		g.st.ConsecutiveFailures = 0
		g.trial = false
		g.st.BreakerOpen = false
		g.setModeLocked(ModeOnline)
		return
	}

	g.st.ConsecutiveFailures++
	g.setModeLocked(ModeDegraded)
	if g.threshold <= 0 {
		return
	}
	if g.trial {
		g.trial = false
		g.openedAt = g.clk.Now()
		return
	}
	if g.st.ConsecutiveFailures == g.threshold {
		g.openedAt = g.clk.Now()
		g.st.BreakerOpen = true
		g.log.Warn("circuit breaker opened",
			zap.Int("failures", g.st.ConsecutiveFailures),
			zap.Duration("cooldown", g.cooldown),
		)
	}
}

func (g *Guard) setModeLocked(m Mode) {
	if g.st.Mode != m {
		g.st.Mode = m
		g.log.Info("switched mode", zap.String("mode", string(m)))
	}
}

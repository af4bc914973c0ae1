package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/boardmembers"
	"github.com/nu-student-clubs/clubs-admin/internal/app/clubs"
	"github.com/nu-student-clubs/clubs-admin/internal/app/committees"
	"github.com/nu-student-clubs/clubs-admin/internal/app/dashboard"
	"github.com/nu-student-clubs/clubs-admin/internal/app/memberships"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Pinger checks backend liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the resource services the console drives.
type Services struct {
	Clubs        *clubs.Service
	Memberships  *memberships.Service
	Admins       *admins.Service
	BoardMembers *boardmembers.Service
	Committees   *committees.Service
}

type App struct {
	svc    Services
	dash   *dashboard.Model
	pinger Pinger
	userID domain.UserID
	log    *zap.Logger

	in  *bufio.Reader
	out io.Writer
	fd  int

	mu   sync.Mutex
	mode Mode
}

type Option func(*App)

// WithIO replaces stdin/stdout. Secrets are then read as plain lines from in.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
		a.fd = -1
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// NewApp wires the console to svc. userID identifies the current user for
// apply and mine.
func NewApp(svc Services, pinger Pinger, userID domain.UserID, clk clock.Clock, opts ...Option) *App {
	a := &App{
		svc:    svc,
		pinger: pinger,
		userID: userID,
		log:    zap.NewNop(),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		fd:     int(os.Stdin.Fd()),
		mode:   ModeOnline,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.Named("console")
	a.dash = dashboard.New(svc.Admins, svc.BoardMembers, svc.Committees, clk, a.log)
	return a
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info("switched mode", zap.String("mode", string(mode)))
	}
}

// CheckOnline pings the backend once and updates the mode.
func (a *App) CheckOnline(ctx context.Context, timeout time.Duration) {
	if a.pinger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := a.pinger.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.CheckOnline(ctx, 3*time.Second)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail prints msg and any per-field validation details carried by err.
func (a *App) fail(msg string, err error) {
	a.println(msg)
	a.printDetails(err)
	a.log.Debug(msg, zap.Error(err))
}

func (a *App) printDetails(err error) {
	var details map[string]any
	var ae *apperr.Error
	if errors.As(err, &ae) {
		details = ae.Details
	} else if ge, ok := gateway.AsError(err); ok {
		details = ge.Details
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.printf("  %s: %v\n", k, details[k])
	}
}

func (a *App) confirm(prompt string) bool {
	return Confirm(a.in, a.out, prompt)
}

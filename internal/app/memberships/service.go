// Package memberships is the club application service. Every operation,
// including apply and withdraw, falls back to the local store.
package memberships

import (
	"context"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

const (
	OpList     = "list"
	OpGet      = "get"
	OpApply    = "create"
	OpWithdraw = "delete"
)

func DefaultCoverage() fallback.Coverage {
	return fallback.Coverage{
		OpList:     true,
		OpGet:      true,
		OpApply:    true,
		OpWithdraw: true,
	}
}

type Service struct {
	remote membershipsource.Source
	local  membershipsource.Source
	guard  *fallback.Guard
	log    *zap.Logger
}

func NewService(remote, local membershipsource.Source, log *zap.Logger, clk clock.Clock, opts fallback.Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("memberships")
	return &Service{
		remote: remote,
		local:  local,
		guard:  fallback.NewGuard("memberships", DefaultCoverage(), opts, log, clk),
		log:    log,
	}
}

func (s *Service) Status() fallback.Status { return s.guard.Status() }

func (s *Service) List(ctx context.Context) ([]domain.Membership, error) {
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpList},
		s.remote.List,
		s.local.List,
	)
}

func (s *Service) Get(ctx context.Context, id domain.MembershipID) (domain.Membership, error) {
	if id <= 0 {
		return domain.Membership{}, membershipsource.ErrNotFound
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpGet},
		func(ctx context.Context) (domain.Membership, error) { return s.remote.Get(ctx, id) },
		func(ctx context.Context) (domain.Membership, error) { return s.local.Get(ctx, id) },
	)
}

// Apply submits an application for req.UserID to join req.ClubID.
func (s *Service) Apply(ctx context.Context, req membershipsource.MembershipRequest) (domain.Membership, error) {
	if err := ValidateMembershipRequest(req); err != nil {
		return domain.Membership{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpApply, Write: true},
		func(ctx context.Context) (domain.Membership, error) { return s.remote.Create(ctx, req) },
		func(ctx context.Context) (domain.Membership, error) { return s.local.Create(ctx, req) },
	)
}

// Withdraw removes an application.
func (s *Service) Withdraw(ctx context.Context, id domain.MembershipID) error {
	if id <= 0 {
		return membershipsource.ErrNotFound
	}
	return fallback.Exec(ctx, s.guard, fallback.Op{Name: OpWithdraw, Write: true},
		func(ctx context.Context) error { return s.remote.Delete(ctx, id) },
		func(ctx context.Context) error { return s.local.Delete(ctx, id) },
	)
}

// GetMyMemberships returns the memberships of userID. It never fails: if the
// list cannot be loaded from either source the result is empty.
func (s *Service) GetMyMemberships(ctx context.Context, userID domain.UserID) []domain.Membership {
	all, err := s.List(ctx)
	if err != nil {
		s.log.Warn("failed to load memberships", zap.Int64("userId", int64(userID)), zap.Error(err))
		return []domain.Membership{}
	}
	out := make([]domain.Membership, 0, len(all))
	for _, m := range all {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

func ValidateMembershipRequest(req membershipsource.MembershipRequest) error {
	var c apperr.Checker
	c.Positive("userId", int64(req.UserID))
	c.Positive("clubId", int64(req.ClubID))
	return c.Err("invalid application")
}

// Package committees is the club committee service. Reads fall back to the
// local store; writes always propagate the backend's error.
package committees

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

func DefaultCoverage() fallback.Coverage {
	return fallback.Coverage{OpList: true, OpGet: true}
}

type Service struct {
	remote committeesource.Source
	local  committeesource.Source
	guard  *fallback.Guard
}

func NewService(remote, local committeesource.Source, log *zap.Logger, clk clock.Clock, opts fallback.Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		remote: remote,
		local:  local,
		guard:  fallback.NewGuard("committees", DefaultCoverage(), opts, log.Named("committees"), clk),
	}
}

func (s *Service) Status() fallback.Status { return s.guard.Status() }

func (s *Service) List(ctx context.Context) ([]domain.Committee, error) {
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpList}, s.remote.List, s.local.List)
}

func (s *Service) Get(ctx context.Context, id domain.CommitteeID) (domain.Committee, error) {
	if id <= 0 {
		return domain.Committee{}, committeesource.ErrNotFound
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpGet},
		func(ctx context.Context) (domain.Committee, error) { return s.remote.Get(ctx, id) },
		func(ctx context.Context) (domain.Committee, error) { return s.local.Get(ctx, id) },
	)
}

func (s *Service) Create(ctx context.Context, req committeesource.CreateCommitteeRequest) (domain.Committee, error) {
	req, err := NormalizeCreateCommittee(req)
	if err != nil {
		return domain.Committee{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpCreate, Write: true},
		func(ctx context.Context) (domain.Committee, error) { return s.remote.Create(ctx, req) },
		func(ctx context.Context) (domain.Committee, error) { return s.local.Create(ctx, req) },
	)
}

func (s *Service) Update(ctx context.Context, id domain.CommitteeID, req committeesource.UpdateCommitteeRequest) (domain.Committee, error) {
	if id <= 0 {
		return domain.Committee{}, committeesource.ErrNotFound
	}
	req, err := NormalizeUpdateCommittee(req)
	if err != nil {
		return domain.Committee{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpUpdate, Write: true},
		func(ctx context.Context) (domain.Committee, error) { return s.remote.Update(ctx, id, req) },
		func(ctx context.Context) (domain.Committee, error) { return s.local.Update(ctx, id, req) },
	)
}

func (s *Service) Delete(ctx context.Context, id domain.CommitteeID) error {
	if id <= 0 {
		return committeesource.ErrNotFound
	}
	return fallback.Exec(ctx, s.guard, fallback.Op{Name: OpDelete, Write: true},
		func(ctx context.Context) error { return s.remote.Delete(ctx, id) },
		func(ctx context.Context) error { return s.local.Delete(ctx, id) },
	)
}

// NormalizeCreateCommittee validates a create request. HeadID 0 means no head.
func NormalizeCreateCommittee(req committeesource.CreateCommitteeRequest) (committeesource.CreateCommitteeRequest, error) {
	req.Name = domain.NormalizeHumanName(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	var c apperr.Checker
	c.Require("name", req.Name)
	c.Positive("clubId", int64(req.ClubID))
	if req.HeadID < 0 {
		c.Fail("headId", "must be a positive integer")
	}
	if err := c.Err("invalid committee"); err != nil {
		return committeesource.CreateCommitteeRequest{}, err
	}
	return req, nil
}

// NormalizeUpdateCommittee validates specified fields. A null description or
// head clears it; name and clubId cannot be null.
func NormalizeUpdateCommittee(req committeesource.UpdateCommitteeRequest) (committeesource.UpdateCommitteeRequest, error) {
	var c apperr.Checker

	if req.Name.IsNull() {
		c.Fail("name", "cannot be null")
	} else if req.Name.HasValue() {
		name := domain.NormalizeHumanName(req.Name.Value())
		c.Require("name", name)
		req.Name = domain.Some(name)
	}
	if req.Description.HasValue() {
		req.Description = domain.Some(strings.TrimSpace(req.Description.Value()))
	}
	if req.ClubID.IsNull() {
		c.Fail("clubId", "cannot be null")
	} else if req.ClubID.HasValue() {
		c.Positive("clubId", int64(req.ClubID.Value()))
	}
	if req.HeadID.HasValue() {
		c.Positive("headId", int64(req.HeadID.Value()))
	}

	if err := c.Err("invalid committee"); err != nil {
		return committeesource.UpdateCommitteeRequest{}, err
	}
	return req, nil
}

// Package boardmembers is the club board member service. Reads fall back to the
// local store; writes always propagate the backend's error.
package boardmembers

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
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
	remote boardmembersource.Source
	local  boardmembersource.Source
	guard  *fallback.Guard
}

func NewService(remote, local boardmembersource.Source, log *zap.Logger, clk clock.Clock, opts fallback.Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		remote: remote,
		local:  local,
		guard:  fallback.NewGuard("board-members", DefaultCoverage(), opts, log.Named("boardmembers"), clk),
	}
}

func (s *Service) Status() fallback.Status { return s.guard.Status() }

func (s *Service) List(ctx context.Context) ([]domain.BoardMember, error) {
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpList}, s.remote.List, s.local.List)
}

func (s *Service) Get(ctx context.Context, id domain.BoardMemberID) (domain.BoardMember, error) {
	if id <= 0 {
		return domain.BoardMember{}, boardmembersource.ErrNotFound
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpGet},
		func(ctx context.Context) (domain.BoardMember, error) { return s.remote.Get(ctx, id) },
		func(ctx context.Context) (domain.BoardMember, error) { return s.local.Get(ctx, id) },
	)
}

func (s *Service) Create(ctx context.Context, req boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error) {
	req, err := NormalizeCreateBoardMember(req)
	if err != nil {
		return domain.BoardMember{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpCreate, Write: true},
		func(ctx context.Context) (domain.BoardMember, error) { return s.remote.Create(ctx, req) },
		func(ctx context.Context) (domain.BoardMember, error) { return s.local.Create(ctx, req) },
	)
}

func (s *Service) Update(ctx context.Context, id domain.BoardMemberID, req boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error) {
	if id <= 0 {
		return domain.BoardMember{}, boardmembersource.ErrNotFound
	}
	req, err := NormalizeUpdateBoardMember(req)
	if err != nil {
		return domain.BoardMember{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpUpdate, Write: true},
		func(ctx context.Context) (domain.BoardMember, error) { return s.remote.Update(ctx, id, req) },
		func(ctx context.Context) (domain.BoardMember, error) { return s.local.Update(ctx, id, req) },
	)
}

func (s *Service) Delete(ctx context.Context, id domain.BoardMemberID) error {
	if id <= 0 {
		return boardmembersource.ErrNotFound
	}
	return fallback.Exec(ctx, s.guard, fallback.Op{Name: OpDelete, Write: true},
		func(ctx context.Context) error { return s.remote.Delete(ctx, id) },
		func(ctx context.Context) error { return s.local.Delete(ctx, id) },
	)
}

func NormalizeCreateBoardMember(req boardmembersource.CreateBoardMemberRequest) (boardmembersource.CreateBoardMemberRequest, error) {
	req.Email = domain.NormalizeEmail(req.Email)
	req.FirstName = domain.NormalizeHumanName(req.FirstName)
	req.LastName = domain.NormalizeHumanName(req.LastName)
	req.Position = domain.NormalizeHumanName(req.Position)
	req.JoinDate = strings.TrimSpace(req.JoinDate)
	req.Season = strings.TrimSpace(req.Season)

	var c apperr.Checker
	c.Email("email", req.Email)
	admins.CheckPassword(&c, "password", req.Password)
	c.Require("firstName", req.FirstName)
	c.Require("lastName", req.LastName)
	c.Require("position", req.Position)
	c.Date("joinDate", req.JoinDate)
	c.Require("season", req.Season)
	c.Positive("clubId", int64(req.ClubID))
	if err := c.Err("invalid board member"); err != nil {
		return boardmembersource.CreateBoardMemberRequest{}, err
	}
	return req, nil
}

// NormalizeUpdateBoardMember validates specified fields. No field accepts null.
func NormalizeUpdateBoardMember(req boardmembersource.UpdateBoardMemberRequest) (boardmembersource.UpdateBoardMemberRequest, error) {
	var c apperr.Checker

	req.Email = notNull(&c, "email", req.Email, domain.NormalizeEmail)
	if req.Email.HasValue() {
		c.Email("email", req.Email.Value())
	}
	if req.Password.IsNull() {
		c.Fail("password", "cannot be null")
	} else if req.Password.HasValue() {
		admins.CheckPassword(&c, "password", req.Password.Value())
	}
	req.FirstName = notNull(&c, "firstName", req.FirstName, domain.NormalizeHumanName)
	req.LastName = notNull(&c, "lastName", req.LastName, domain.NormalizeHumanName)
	req.Position = notNull(&c, "position", req.Position, domain.NormalizeHumanName)
	req.JoinDate = notNull(&c, "joinDate", req.JoinDate, strings.TrimSpace)
	if req.JoinDate.HasValue() {
		c.Date("joinDate", req.JoinDate.Value())
	}
	req.Season = notNull(&c, "season", req.Season, strings.TrimSpace)
	if req.ClubID.IsNull() {
		c.Fail("clubId", "cannot be null")
	} else if req.ClubID.HasValue() {
		c.Positive("clubId", int64(req.ClubID.Value()))
	}
	if req.IsActive.IsNull() {
		c.Fail("isActive", "cannot be null")
	}

	if err := c.Err("invalid board member"); err != nil {
		return boardmembersource.UpdateBoardMemberRequest{}, err
	}
	return req, nil
}

// notNull normalizes a specified string field and requires it to be non-empty.
func notNull(c *apperr.Checker, field string, o domain.Optional[string], norm func(string) string) domain.Optional[string] {
	if !o.IsSpecified() {
		return o
	}
	if o.IsNull() {
		c.Fail(field, "cannot be null")
		return o
	}
	v := norm(o.Value())
	c.Require(field, v)
	return domain.Some(v)
}

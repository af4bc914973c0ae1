// Package clubs is the club resource service: remote-first reads with fallback
// to the local store, and propagating writes.
package clubs

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

const (
	OpList           = "list"
	OpGet            = "get"
	OpSearch         = "search"
	OpListByCategory = "category"
	OpCreate         = "create"
	OpUpdate         = "update"
	OpDelete         = "delete"
)

// DefaultCoverage: reads fall back, writes propagate.
func DefaultCoverage() fallback.Coverage {
	return fallback.Coverage{
		OpList:           true,
		OpGet:            true,
		OpSearch:         true,
		OpListByCategory: true,
		OpCreate:         false,
		OpUpdate:         false,
		OpDelete:         false,
	}
}

type Service struct {
	remote clubsource.Source
	local  clubsource.Source
	guard  *fallback.Guard
}

func NewService(remote, local clubsource.Source, log *zap.Logger, clk clock.Clock, opts fallback.Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		remote: remote,
		local:  local,
		guard:  fallback.NewGuard("clubs", DefaultCoverage(), opts, log.Named("clubs"), clk),
	}
}

func (s *Service) Status() fallback.Status { return s.guard.Status() }

func (s *Service) List(ctx context.Context, page, size int) (domain.Page[domain.Club], error) {
	page, size = domain.NormalizePaging(page, size)
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpList},
		func(ctx context.Context) (domain.Page[domain.Club], error) { return s.remote.List(ctx, page, size) },
		func(ctx context.Context) (domain.Page[domain.Club], error) { return s.local.List(ctx, page, size) },
	)
}

// Get fails with ErrNotFound for ids below 1 without calling either source.
func (s *Service) Get(ctx context.Context, id domain.ClubID) (domain.Club, error) {
	if id <= 0 {
		return domain.Club{}, clubsource.ErrNotFound
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpGet},
		func(ctx context.Context) (domain.Club, error) { return s.remote.Get(ctx, id) },
		func(ctx context.Context) (domain.Club, error) { return s.local.Get(ctx, id) },
	)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	name = strings.TrimSpace(name)
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpSearch},
		func(ctx context.Context) ([]domain.Club, error) { return s.remote.SearchByName(ctx, name) },
		func(ctx context.Context) ([]domain.Club, error) { return s.local.SearchByName(ctx, name) },
	)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Club, error) {
	category = strings.TrimSpace(category)
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpListByCategory},
		func(ctx context.Context) ([]domain.Club, error) { return s.remote.ListByCategory(ctx, category) },
		func(ctx context.Context) ([]domain.Club, error) { return s.local.ListByCategory(ctx, category) },
	)
}

func (s *Service) Create(ctx context.Context, req clubsource.ClubRequest) (domain.Club, error) {
	req, err := NormalizeClubRequest(req)
	if err != nil {
		return domain.Club{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpCreate, Write: true},
		func(ctx context.Context) (domain.Club, error) { return s.remote.Create(ctx, req) },
		func(ctx context.Context) (domain.Club, error) { return s.local.Create(ctx, req) },
	)
}

func (s *Service) Update(ctx context.Context, id domain.ClubID, req clubsource.ClubRequest) (domain.Club, error) {
	if id <= 0 {
		return domain.Club{}, clubsource.ErrNotFound
	}
	req, err := NormalizeClubRequest(req)
	if err != nil {
		return domain.Club{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpUpdate, Write: true},
		func(ctx context.Context) (domain.Club, error) { return s.remote.Update(ctx, id, req) },
		func(ctx context.Context) (domain.Club, error) { return s.local.Update(ctx, id, req) },
	)
}

func (s *Service) Delete(ctx context.Context, id domain.ClubID) error {
	if id <= 0 {
		return clubsource.ErrNotFound
	}
	err := fallback.Exec(ctx, s.guard, fallback.Op{Name: OpDelete, Write: true},
		func(ctx context.Context) error { return s.remote.Delete(ctx, id) },
		func(ctx context.Context) error { return s.local.Delete(ctx, id) },
	)
	if err != nil {
		return fmt.Errorf("delete club %d: %w", id, err)
	}
	return nil
}

// NormalizeClubRequest trims every field and validates the result.
// Name, president, email and category are required; email must be a bare address.
func NormalizeClubRequest(req clubsource.ClubRequest) (clubsource.ClubRequest, error) {
	req.Name = domain.NormalizeHumanName(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.President = domain.NormalizeHumanName(req.President)
	req.Email = strings.TrimSpace(req.Email)
	req.Category = strings.TrimSpace(req.Category)

	var c apperr.Checker
	c.Require("name", req.Name)
	c.Require("president", req.President)
	if c.Require("email", req.Email) {
		c.Email("email", req.Email)
	}
	c.Require("category", req.Category)
	if err := c.Err("invalid club"); err != nil {
		return clubsource.ClubRequest{}, err
	}
	return req, nil
}

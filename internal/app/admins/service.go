// Package admins is the admin account service. Reads fall back to the local
// store; writes always propagate the backend's error.
package admins

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// PasswordMinLength applies to admin and board member passwords.
const PasswordMinLength = 8

func DefaultCoverage() fallback.Coverage {
	return fallback.Coverage{OpList: true, OpGet: true}
}

type Service struct {
	remote adminsource.Source
	local  adminsource.Source
	guard  *fallback.Guard
}

func NewService(remote, local adminsource.Source, log *zap.Logger, clk clock.Clock, opts fallback.Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		remote: remote,
		local:  local,
		guard:  fallback.NewGuard("admins", DefaultCoverage(), opts, log.Named("admins"), clk),
	}
}

func (s *Service) Status() fallback.Status { return s.guard.Status() }

func (s *Service) List(ctx context.Context) ([]domain.Admin, error) {
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpList}, s.remote.List, s.local.List)
}

func (s *Service) Get(ctx context.Context, id domain.AdminID) (domain.Admin, error) {
	if id <= 0 {
		return domain.Admin{}, adminsource.ErrNotFound
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpGet},
		func(ctx context.Context) (domain.Admin, error) { return s.remote.Get(ctx, id) },
		func(ctx context.Context) (domain.Admin, error) { return s.local.Get(ctx, id) },
	)
}

func (s *Service) Create(ctx context.Context, req adminsource.CreateAdminRequest) (domain.Admin, error) {
	req, err := NormalizeCreateAdmin(req)
	if err != nil {
		return domain.Admin{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpCreate, Write: true},
		func(ctx context.Context) (domain.Admin, error) { return s.remote.Create(ctx, req) },
		func(ctx context.Context) (domain.Admin, error) { return s.local.Create(ctx, req) },
	)
}

func (s *Service) Update(ctx context.Context, id domain.AdminID, req adminsource.UpdateAdminRequest) (domain.Admin, error) {
	if id <= 0 {
		return domain.Admin{}, adminsource.ErrNotFound
	}
	req, err := NormalizeUpdateAdmin(req)
	if err != nil {
		return domain.Admin{}, err
	}
	return fallback.Do(ctx, s.guard, fallback.Op{Name: OpUpdate, Write: true},
		func(ctx context.Context) (domain.Admin, error) { return s.remote.Update(ctx, id, req) },
		func(ctx context.Context) (domain.Admin, error) { return s.local.Update(ctx, id, req) },
	)
}

func (s *Service) Delete(ctx context.Context, id domain.AdminID) error {
	if id <= 0 {
		return adminsource.ErrNotFound
	}
	return fallback.Exec(ctx, s.guard, fallback.Op{Name: OpDelete, Write: true},
		func(ctx context.Context) error { return s.remote.Delete(ctx, id) },
		func(ctx context.Context) error { return s.local.Delete(ctx, id) },
	)
}

func NormalizeCreateAdmin(req adminsource.CreateAdminRequest) (adminsource.CreateAdminRequest, error) {
	req.Email = domain.NormalizeEmail(req.Email)
	req.FirstName = domain.NormalizeHumanName(req.FirstName)
	req.LastName = domain.NormalizeHumanName(req.LastName)
	req.Department = trimOptionalPtr(req.Department)
	req.AdminLevel = trimOptionalPtr(req.AdminLevel)

	var c apperr.Checker
	c.Email("email", req.Email)
	CheckPassword(&c, "password", req.Password)
	c.Require("firstName", req.FirstName)
	c.Require("lastName", req.LastName)
	checkPermissions(&c, req.Permissions)
	if err := c.Err("invalid admin"); err != nil {
		return adminsource.CreateAdminRequest{}, err
	}
	return req, nil
}

// NormalizeUpdateAdmin validates specified fields. Email, password and names cannot be null.
func NormalizeUpdateAdmin(req adminsource.UpdateAdminRequest) (adminsource.UpdateAdminRequest, error) {
	var c apperr.Checker

	if req.Email.IsSpecified() {
		if req.Email.IsNull() {
			c.Fail("email", "cannot be null")
		} else {
			email := domain.NormalizeEmail(req.Email.Value())
			c.Email("email", email)
			req.Email = domain.Some(email)
		}
	}
	if req.Password.IsSpecified() {
		if req.Password.IsNull() {
			c.Fail("password", "cannot be null")
		} else {
			CheckPassword(&c, "password", req.Password.Value())
		}
	}
	req.FirstName = requiredName(&c, "firstName", req.FirstName)
	req.LastName = requiredName(&c, "lastName", req.LastName)
	req.Department = trimOptional(req.Department)
	req.AdminLevel = trimOptional(req.AdminLevel)
	req.Phone = trimOptional(req.Phone)
	if req.Active.IsNull() {
		c.Fail("active", "cannot be null")
	}
	if req.Permissions.IsSpecified() {
		if req.Permissions.IsNull() {
			req.Permissions = domain.Some([]string{})
		} else {
			checkPermissions(&c, req.Permissions.Value())
		}
	}

	if err := c.Err("invalid admin"); err != nil {
		return adminsource.UpdateAdminRequest{}, err
	}
	return req, nil
}

func CheckPassword(c *apperr.Checker, field, pw string) {
	if len(pw) < PasswordMinLength {
		c.Fail(field, "must be at least 8 characters")
	}
}

// ParsePermissions splits a comma-separated permission list, dropping empty entries.
func ParsePermissions(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func checkPermissions(c *apperr.Checker, perms []string) {
	for _, p := range perms {
		if !domain.IsKnownPermission(p) {
			c.Fail("permissions", "unknown permission "+p)
			return
		}
	}
}

func requiredName(c *apperr.Checker, field string, o domain.Optional[string]) domain.Optional[string] {
	if !o.IsSpecified() {
		return o
	}
	if o.IsNull() {
		c.Fail(field, "cannot be null")
		return o
	}
	v := domain.NormalizeHumanName(o.Value())
	c.Require(field, v)
	return domain.Some(v)
}

// trimOptional maps a blank value to null.
func trimOptional(o domain.Optional[string]) domain.Optional[string] {
	if !o.HasValue() {
		return o
	}
	v := strings.TrimSpace(o.Value())
	if v == "" {
		return domain.Null[string]()
	}
	return domain.Some(v)
}

func trimOptionalPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

package adminstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

const adminColumns = `
	id, email, password_hash, first_name, last_name,
	phone, profile_picture, department, admin_level,
	active, can_manage_admins, can_manage_applications, can_manage_clubs,
	roles, created_at, updated_at`

// Store is a Postgres implementation of adminsource.Source.
// The Password field round-trips whatever the caller stored (a bcrypt hash in the backend).
type Store struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewStore(pool *pgxpool.Pool, clk clock.Clock) *Store {
	return &Store{pool: pool, clk: clk}
}

func (s *Store) List(ctx context.Context) ([]domain.Admin, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.AdminID) (domain.Admin, error) {
	if s.pool == nil {
		return domain.Admin{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, int64(id))
	return scanAdmin(row)
}

func (s *Store) Create(ctx context.Context, req adminsource.CreateAdminRequest) (domain.Admin, error) {
	if s.pool == nil {
		return domain.Admin{}, errors.New("nil postgres pool")
	}
	now := s.clk.Now().UnixMilli()
	a := domain.Admin{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		AdminLevel: req.AdminLevel,
		Active:     true,
		Roles:      []string{domain.RoleAdmin},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	a.ApplyPermissions(req.Permissions)

	row := s.pool.QueryRow(ctx, `
		INSERT INTO admins (
			email,
			password_hash,
			first_name,
			last_name,
			phone,
			profile_picture,
			department,
			admin_level,
			active,
			can_manage_admins,
			can_manage_applications,
			can_manage_clubs,
			roles,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+adminColumns,
		adminArgs(a)...,
	)
	return scanAdmin(row)
}

// Update reads the row under a lock, applies the partial update and writes every column back.
func (s *Store) Update(ctx context.Context, id domain.AdminID, req adminsource.UpdateAdminRequest) (domain.Admin, error) {
	if s.pool == nil {
		return domain.Admin{}, errors.New("nil postgres pool")
	}
	var out domain.Admin
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1 FOR UPDATE`, int64(id))
		a, err := scanAdmin(row)
		if err != nil {
			return err
		}
		req.ApplyTo(&a)
		a.UpdatedAt = s.clk.Now().UnixMilli()

		args := append(adminArgs(a), int64(id))
		row = tx.QueryRow(ctx, `
			UPDATE admins
			SET email = $1,
			    password_hash = $2,
			    first_name = $3,
			    last_name = $4,
			    phone = $5,
			    profile_picture = $6,
			    department = $7,
			    admin_level = $8,
			    active = $9,
			    can_manage_admins = $10,
			    can_manage_applications = $11,
			    can_manage_clubs = $12,
			    roles = $13,
			    created_at = $14,
			    updated_at = $15
			WHERE id = $16
			RETURNING `+adminColumns,
			args...,
		)
		out, err = scanAdmin(row)
		return err
	})
	if err != nil {
		return domain.Admin{}, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id domain.AdminID) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := s.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return adminsource.ErrNotFound
	}
	return nil
}

// adminArgs lists a's columns in INSERT order, without the id.
func adminArgs(a domain.Admin) []any {
	roles := a.Roles
	if roles == nil {
		roles = []string{}
	}
	return []any{
		a.Email,
		a.Password,
		a.FirstName,
		a.LastName,
		a.Phone,
		a.ProfilePicture,
		a.Department,
		a.AdminLevel,
		a.Active,
		a.CanManageAdmins,
		a.CanManageApplications,
		a.CanManageClubs,
		roles,
		a.CreatedAt,
		a.UpdatedAt,
	}
}

func scanAdmin(row pgx.Row) (domain.Admin, error) {
	var (
		a  domain.Admin
		id int64
	)
	if err := row.Scan(
		&id,
		&a.Email,
		&a.Password,
		&a.FirstName,
		&a.LastName,
		&a.Phone,
		&a.ProfilePicture,
		&a.Department,
		&a.AdminLevel,
		&a.Active,
		&a.CanManageAdmins,
		&a.CanManageApplications,
		&a.CanManageClubs,
		&a.Roles,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Admin{}, adminsource.ErrNotFound
		}
		return domain.Admin{}, err
	}
	a.ID = domain.AdminID(id)
	return a, nil
}

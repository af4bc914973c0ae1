package membershipstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

// Store is a Postgres implementation of membershipsource.Source.
type Store struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewStore(pool *pgxpool.Pool, clk clock.Clock) *Store {
	return &Store{pool: pool, clk: clk}
}

func (s *Store) List(ctx context.Context) ([]domain.Membership, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, club_id, joined_at
		FROM memberships
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.MembershipID) (domain.Membership, error) {
	if s.pool == nil {
		return domain.Membership{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `
		SELECT id, user_id, club_id, joined_at
		FROM memberships
		WHERE id = $1
	`, int64(id))
	return scanMembership(row)
}

// Create records the application with joined_at set to the current time.
func (s *Store) Create(ctx context.Context, req membershipsource.MembershipRequest) (domain.Membership, error) {
	if s.pool == nil {
		return domain.Membership{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO memberships (user_id, club_id, joined_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, club_id, joined_at
	`,
		int64(req.UserID),
		int64(req.ClubID),
		domain.FormatTimestamp(s.clk.Now()),
	)
	return scanMembership(row)
}

func (s *Store) Delete(ctx context.Context, id domain.MembershipID) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := s.pool.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return membershipsource.ErrNotFound
	}
	return nil
}

func scanMembership(row pgx.Row) (domain.Membership, error) {
	var (
		m      domain.Membership
		id     int64
		userID int64
		clubID int64
	)
	if err := row.Scan(&id, &userID, &clubID, &m.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Membership{}, membershipsource.ErrNotFound
		}
		return domain.Membership{}, err
	}
	m.ID = domain.MembershipID(id)
	m.UserID = domain.UserID(userID)
	m.ClubID = domain.ClubID(clubID)
	return m, nil
}

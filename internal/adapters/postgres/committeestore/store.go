package committeestore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

const committeeColumns = `id, name, description, club_id, head_id`

// Store is a Postgres implementation of committeesource.Source.
// A committee without a head has head_id NULL.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) List(ctx context.Context) ([]domain.Committee, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `SELECT `+committeeColumns+` FROM committees ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Committee, 0)
	for rows.Next() {
		c, err := scanCommittee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.CommitteeID) (domain.Committee, error) {
	if s.pool == nil {
		return domain.Committee{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `SELECT `+committeeColumns+` FROM committees WHERE id = $1`, int64(id))
	return scanCommittee(row)
}

func (s *Store) Create(ctx context.Context, req committeesource.CreateCommitteeRequest) (domain.Committee, error) {
	if s.pool == nil {
		return domain.Committee{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO committees (name, description, club_id, head_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+committeeColumns,
		req.Name,
		req.Description,
		int64(req.ClubID),
		headParam(req.HeadID),
	)
	return scanCommittee(row)
}

func (s *Store) Update(ctx context.Context, id domain.CommitteeID, req committeesource.UpdateCommitteeRequest) (domain.Committee, error) {
	if s.pool == nil {
		return domain.Committee{}, errors.New("nil postgres pool")
	}
	var out domain.Committee
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+committeeColumns+` FROM committees WHERE id = $1 FOR UPDATE`, int64(id))
		c, err := scanCommittee(row)
		if err != nil {
			return err
		}
		req.ApplyTo(&c)

		row = tx.QueryRow(ctx, `
			UPDATE committees
			SET name = $2,
			    description = $3,
			    club_id = $4,
			    head_id = $5
			WHERE id = $1
			RETURNING `+committeeColumns,
			int64(id),
			c.Name,
			c.Description,
			int64(c.ClubID),
			headParam(c.HeadID),
		)
		out, err = scanCommittee(row)
		return err
	})
	if err != nil {
		return domain.Committee{}, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id domain.CommitteeID) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := s.pool.Exec(ctx, `DELETE FROM committees WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return committeesource.ErrNotFound
	}
	return nil
}

func headParam(id domain.BoardMemberID) *int64 {
	if id == 0 {
		return nil
	}
	v := int64(id)
	return &v
}

func scanCommittee(row pgx.Row) (domain.Committee, error) {
	var (
		c      domain.Committee
		id     int64
		clubID int64
		headID *int64
	)
	if err := row.Scan(&id, &c.Name, &c.Description, &clubID, &headID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Committee{}, committeesource.ErrNotFound
		}
		return domain.Committee{}, err
	}
	c.ID = domain.CommitteeID(id)
	c.ClubID = domain.ClubID(clubID)
	if headID != nil {
		c.HeadID = domain.BoardMemberID(*headID)
	}
	return c, nil
}

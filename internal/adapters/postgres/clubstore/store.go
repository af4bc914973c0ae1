package clubstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

const clubColumns = `id, name, description, president, email, category, created_at, updated_at`

// Store is a Postgres implementation of clubsource.Source.
type Store struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewStore(pool *pgxpool.Pool, clk clock.Clock) *Store {
	return &Store{pool: pool, clk: clk}
}

func (s *Store) List(ctx context.Context, page, size int) (domain.Page[domain.Club], error) {
	if s.pool == nil {
		return domain.Page[domain.Club]{}, errors.New("nil postgres pool")
	}
	page, size = domain.NormalizePaging(page, size)

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM clubs`).Scan(&total); err != nil {
		return domain.Page[domain.Club]{}, err
	}
	out := domain.Page[domain.Club]{
		Content:       []domain.Club{},
		TotalElements: total,
		TotalPages:    domain.TotalPages(total, size),
		CurrentPage:   page,
	}
	// Pages past the end are answered without a query; page*size may overflow.
	if page >= out.TotalPages {
		return out, nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+clubColumns+`
		FROM clubs
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`, size, page*size)
	if err != nil {
		return domain.Page[domain.Club]{}, err
	}
	if out.Content, err = collectClubs(rows); err != nil {
		return domain.Page[domain.Club]{}, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.ClubID) (domain.Club, error) {
	if s.pool == nil {
		return domain.Club{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = $1`, int64(id))
	return scanClub(row)
}

func (s *Store) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+clubColumns+`
		FROM clubs
		WHERE strpos(lower(name), lower($1)) > 0
		ORDER BY id ASC
	`, name)
	if err != nil {
		return nil, err
	}
	return collectClubs(rows)
}

func (s *Store) ListByCategory(ctx context.Context, category string) ([]domain.Club, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+clubColumns+`
		FROM clubs
		WHERE category = $1
		ORDER BY id ASC
	`, category)
	if err != nil {
		return nil, err
	}
	return collectClubs(rows)
}

func (s *Store) Create(ctx context.Context, req clubsource.ClubRequest) (domain.Club, error) {
	if s.pool == nil {
		return domain.Club{}, errors.New("nil postgres pool")
	}
	now := domain.FormatTimestamp(s.clk.Now())
	row := s.pool.QueryRow(ctx, `
		INSERT INTO clubs (name, description, president, email, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+clubColumns,
		req.Name,
		req.Description,
		req.President,
		req.Email,
		req.Category,
		now,
	)
	return scanClub(row)
}

// Update replaces every mutable field and keeps created_at.
func (s *Store) Update(ctx context.Context, id domain.ClubID, req clubsource.ClubRequest) (domain.Club, error) {
	if s.pool == nil {
		return domain.Club{}, errors.New("nil postgres pool")
	}
	now := domain.FormatTimestamp(s.clk.Now())
	row := s.pool.QueryRow(ctx, `
		UPDATE clubs
		SET name = $2,
		    description = $3,
		    president = $4,
		    email = $5,
		    category = $6,
		    updated_at = $7
		WHERE id = $1
		RETURNING `+clubColumns,
		int64(id),
		req.Name,
		req.Description,
		req.President,
		req.Email,
		req.Category,
		now,
	)
	return scanClub(row)
}

func (s *Store) Delete(ctx context.Context, id domain.ClubID) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := s.pool.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return clubsource.ErrNotFound
	}
	return nil
}

func scanClub(row pgx.Row) (domain.Club, error) {
	var (
		c  domain.Club
		id int64
	)
	if err := row.Scan(&id, &c.Name, &c.Description, &c.President, &c.Email, &c.Category, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Club{}, clubsource.ErrNotFound
		}
		return domain.Club{}, err
	}
	c.ID = domain.ClubID(id)
	return c, nil
}

func collectClubs(rows pgx.Rows) ([]domain.Club, error) {
	defer rows.Close()
	out := make([]domain.Club, 0)
	for rows.Next() {
		c, err := scanClub(rows)
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

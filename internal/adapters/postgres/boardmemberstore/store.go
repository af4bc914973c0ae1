package boardmemberstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
)

const boardMemberColumns = `id, email, password_hash, first_name, last_name, position, join_date, season, club_id, is_active`

// Store is a Postgres implementation of boardmembersource.Source.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) List(ctx context.Context) ([]domain.BoardMember, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `SELECT `+boardMemberColumns+` FROM board_members ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BoardMember, 0)
	for rows.Next() {
		b, err := scanBoardMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.BoardMemberID) (domain.BoardMember, error) {
	if s.pool == nil {
		return domain.BoardMember{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `SELECT `+boardMemberColumns+` FROM board_members WHERE id = $1`, int64(id))
	return scanBoardMember(row)
}

func (s *Store) Create(ctx context.Context, req boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error) {
	if s.pool == nil {
		return domain.BoardMember{}, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO board_members (
			email,
			password_hash,
			first_name,
			last_name,
			position,
			join_date,
			season,
			club_id,
			is_active
		) VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, TRUE)
		RETURNING `+boardMemberColumns,
		req.Email,
		req.Password,
		req.FirstName,
		req.LastName,
		req.Position,
		req.JoinDate,
		req.Season,
		int64(req.ClubID),
	)
	return mapDateError(scanBoardMember(row))
}

func (s *Store) Update(ctx context.Context, id domain.BoardMemberID, req boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error) {
	if s.pool == nil {
		return domain.BoardMember{}, errors.New("nil postgres pool")
	}
	var out domain.BoardMember
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+boardMemberColumns+` FROM board_members WHERE id = $1 FOR UPDATE`, int64(id))
		b, err := scanBoardMember(row)
		if err != nil {
			return err
		}
		req.ApplyTo(&b)

		row = tx.QueryRow(ctx, `
			UPDATE board_members
			SET email = $2,
			    password_hash = $3,
			    first_name = $4,
			    last_name = $5,
			    position = $6,
			    join_date = $7::date,
			    season = $8,
			    club_id = $9,
			    is_active = $10
			WHERE id = $1
			RETURNING `+boardMemberColumns,
			int64(id),
			b.Email,
			b.Password,
			b.FirstName,
			b.LastName,
			b.Position,
			b.JoinDate,
			b.Season,
			int64(b.ClubID),
			b.IsActive,
		)
		out, err = scanBoardMember(row)
		return err
	})
	return mapDateError(out, err)
}

func (s *Store) Delete(ctx context.Context, id domain.BoardMemberID) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := s.pool.Exec(ctx, `DELETE FROM board_members WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return boardmembersource.ErrNotFound
	}
	return nil
}

func mapDateError(b domain.BoardMember, err error) (domain.BoardMember, error) {
	if err == nil {
		return b, nil
	}
	if postgres.IsInvalidDate(err) {
		return domain.BoardMember{}, boardmembersource.ErrInvalidJoinDate
	}
	return domain.BoardMember{}, err
}

func scanBoardMember(row pgx.Row) (domain.BoardMember, error) {
	var (
		b        domain.BoardMember
		id       int64
		clubID   int64
		joinDate time.Time
	)
	if err := row.Scan(
		&id,
		&b.Email,
		&b.Password,
		&b.FirstName,
		&b.LastName,
		&b.Position,
		&joinDate,
		&b.Season,
		&clubID,
		&b.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BoardMember{}, boardmembersource.ErrNotFound
		}
		return domain.BoardMember{}, err
	}
	b.ID = domain.BoardMemberID(id)
	b.ClubID = domain.ClubID(clubID)
	b.JoinDate = joinDate.Format(domain.DateLayout)
	return b, nil
}

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"absensi/internal/domain"
	"absensi/internal/domain/entities"
	"absensi/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

const (
	participantColumns = `id, name, nik, token, attended, created_at, updated_at`

	// Postgres error code for unique_violation.
	uniqueViolation = "23505"

	nikConstraint   = "participants_nik_key"
	tokenConstraint = "participants_token_key"
)

// ParticipantRepository implements output.ParticipantRepository on pgx.
// Uniqueness and the attended flip are enforced by the database itself
// (unique constraints, conditional UPDATE) rather than by read-then-write.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO participants (id, name, nik, token)
		VALUES ($1, $2, $3, $4)
		RETURNING `+participantColumns,
		participant.ID, participant.Name, participant.NIK, participant.Token,
	)
	created, err := scanParticipant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case nikConstraint:
				return domain.ErrNIKTaken
			case tokenConstraint:
				return domain.ErrTokenTaken
			}
		}
		return fmt.Errorf("create participant: %w", err)
	}
	*participant = *created
	return nil
}

func (r *ParticipantRepository) MarkAttended(ctx context.Context, token string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE participants
		SET attended = TRUE, updated_at = now()
		WHERE token = $1 AND attended = FALSE
		RETURNING `+participantColumns,
		token,
	)
	participant, err := scanParticipant(row)
	if err == nil {
		return participant, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("mark attended: %w", err)
	}
	// Nothing flipped: the token is either unknown or already consumed.
	existing, err := r.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return nil, &domain.AlreadyCheckedInError{Participant: existing}
}

func (r *ParticipantRepository) FindByToken(ctx context.Context, token string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+participantColumns+`
		FROM participants
		WHERE token = $1`,
		token,
	)
	participant, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("find participant by token: %w", err)
	}
	return participant, nil
}

func (r *ParticipantRepository) FindByNIK(ctx context.Context, nik string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+participantColumns+`
		FROM participants
		WHERE nik = $1`,
		nik,
	)
	participant, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("find participant by nik: %w", err)
	}
	return participant, nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+participantColumns+`
		FROM participants
		ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("find all participants: %w", err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func (r *ParticipantRepository) FindLatest(ctx context.Context, limit int) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+participantColumns+`
		FROM participants
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find latest participants: %w", err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func (r *ParticipantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return count, nil
}

func (r *ParticipantRepository) CountAttended(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE attended`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attended participants: %w", err)
	}
	return count, nil
}

func collectParticipants(rows pgx.Rows) ([]entities.Participant, error) {
	out := []entities.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}

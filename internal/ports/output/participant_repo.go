package output

import (
	"context"

	"absensi/internal/domain/entities"
)

// ParticipantRepository is the durable store for the roster. Create and
// MarkAttended are the only mutation points and both must be atomic
// conditional writes: a check-then-act sequence in an implementation is a
// correctness bug under concurrent callers.
type ParticipantRepository interface {
	// Create inserts a new participant. It returns domain.ErrNIKTaken when
	// the NIK is already registered and domain.ErrTokenTaken when the
	// generated token collides with an existing one.
	Create(ctx context.Context, participant *entities.Participant) error
	// MarkAttended atomically flips attended from false to true for the
	// participant holding the token and bumps its UpdatedAt. It returns
	// domain.ErrParticipantNotFound for an unknown token and
	// *domain.AlreadyCheckedInError (carrying the unmodified record) when
	// the flip already happened.
	MarkAttended(ctx context.Context, token string) (*entities.Participant, error)
	FindByToken(ctx context.Context, token string) (*entities.Participant, error)
	FindByNIK(ctx context.Context, nik string) (*entities.Participant, error)
	// FindAll returns the roster ordered by CreatedAt ascending.
	FindAll(ctx context.Context) ([]entities.Participant, error)
	// FindLatest returns up to limit participants, newest first.
	FindLatest(ctx context.Context, limit int) ([]entities.Participant, error)
	Count(ctx context.Context) (int64, error)
	CountAttended(ctx context.Context) (int64, error)
}

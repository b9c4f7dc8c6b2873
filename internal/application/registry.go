package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"absensi/internal/domain"
	"absensi/internal/domain/entities"
	"absensi/internal/infrastructure/metrics"
	"absensi/internal/ports/output"
)

const (
	minNameLength = 2
	minNIKLength  = 4

	// tokenAttempts bounds regeneration when a fresh token collides with a
	// stored one.
	tokenAttempts = 5
)

type RegistryService struct {
	participantRepo output.ParticipantRepository
	tokens          output.TokenGenerator
	metrics         *metrics.Metrics
}

func NewRegistryService(
	participantRepo output.ParticipantRepository,
	tokens output.TokenGenerator,
	m *metrics.Metrics,
) *RegistryService {
	return &RegistryService{
		participantRepo: participantRepo,
		tokens:          tokens,
		metrics:         m,
	}
}

// Register creates a participant with a fresh check-in token. NIK uniqueness
// is enforced by the store's conditional insert, so two concurrent calls with
// the same NIK cannot both succeed.
func (s *RegistryService) Register(ctx context.Context, name, nik string) (*entities.Participant, error) {
	name = strings.TrimSpace(name)
	nik = strings.TrimSpace(nik)
	if utf8.RuneCountInString(name) < minNameLength {
		return nil, &domain.ValidationError{Field: "name", Reason: fmt.Sprintf("must be at least %d characters", minNameLength)}
	}
	if utf8.RuneCountInString(nik) < minNIKLength {
		return nil, &domain.ValidationError{Field: "nik", Reason: fmt.Sprintf("must be at least %d characters", minNIKLength)}
	}

	for attempt := 0; attempt < tokenAttempts; attempt++ {
		token, err := s.tokens.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}
		participant := &entities.Participant{
			ID:    uuid.NewString(),
			Name:  name,
			NIK:   nik,
			Token: token,
		}
		err = s.participantRepo.Create(ctx, participant)
		if errors.Is(err, domain.ErrTokenTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.metrics.RecordRegistration()
		return participant, nil
	}
	return nil, domain.ErrTokenExhausted
}

func (s *RegistryService) List(ctx context.Context) ([]entities.Participant, error) {
	return s.participantRepo.FindAll(ctx)
}

func (s *RegistryService) Latest(ctx context.Context, limit int) ([]entities.Participant, error) {
	return s.participantRepo.FindLatest(ctx, limit)
}

func (s *RegistryService) Summary(ctx context.Context) (*entities.Summary, error) {
	total, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	attended, err := s.participantRepo.CountAttended(ctx)
	if err != nil {
		return nil, fmt.Errorf("count attended: %w", err)
	}
	summary := &entities.Summary{
		Total:    total,
		Attended: attended,
		Pending:  total - attended,
	}
	if total > 0 {
		summary.Rate = float64(attended) / float64(total) * 100
	}
	return summary, nil
}

package application

import (
	"context"
	"errors"
	"strings"

	"absensi/internal/domain"
	"absensi/internal/domain/entities"
	"absensi/internal/infrastructure/metrics"
	"absensi/internal/ports/output"
)

type CheckinService struct {
	participantRepo output.ParticipantRepository
	metrics         *metrics.Metrics
}

func NewCheckinService(participantRepo output.ParticipantRepository, m *metrics.Metrics) *CheckinService {
	return &CheckinService{participantRepo: participantRepo, metrics: m}
}

// CheckIn flips the participant matching the token to attended, exactly once.
// The store performs the find-and-flip as a single conditional write, so when
// scanners race on one token a single call wins and the rest get
// *domain.AlreadyCheckedInError with the record the winner produced.
func (s *CheckinService) CheckIn(ctx context.Context, token string) (*entities.Participant, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &domain.ValidationError{Field: "token", Reason: "must not be empty"}
	}

	participant, err := s.participantRepo.MarkAttended(ctx, token)
	if err != nil {
		var repeat *domain.AlreadyCheckedInError
		switch {
		case errors.As(err, &repeat):
			s.metrics.RecordCheckin(metrics.OutcomeRepeat)
		case errors.Is(err, domain.ErrParticipantNotFound):
			s.metrics.RecordCheckin(metrics.OutcomeUnknown)
		}
		return nil, err
	}
	s.metrics.RecordCheckin(metrics.OutcomeSuccess)
	return participant, nil
}

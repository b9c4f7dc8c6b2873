package application_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"absensi/internal/application"
	"absensi/internal/domain"
	"absensi/internal/infrastructure/memory"
	"absensi/internal/infrastructure/token"
)

type CheckinSuite struct {
	suite.Suite
	repo     *memory.ParticipantRepository
	registry *application.RegistryService
	checkin  *application.CheckinService
	ctx      context.Context
}

func (s *CheckinSuite) SetupTest() {
	s.repo = memory.NewParticipantRepository()
	s.registry = application.NewRegistryService(s.repo, token.NewGenerator(), nil)
	s.checkin = application.NewCheckinService(s.repo, nil)
	s.ctx = context.Background()
}

func TestCheckinSuite(t *testing.T) {
	suite.Run(t, new(CheckinSuite))
}

func (s *CheckinSuite) TestValidation() {
	s.Run("rejects empty token", func() {
		_, err := s.checkin.CheckIn(s.ctx, "")
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("token", vErr.Field)
	})

	s.Run("rejects whitespace-only token", func() {
		_, err := s.checkin.CheckIn(s.ctx, "   ")
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
	})
}

func (s *CheckinSuite) TestCheckIn() {
	s.Run("unknown token is not found", func() {
		_, err := s.checkin.CheckIn(s.ctx, "nonexistent-token")
		s.Require().ErrorIs(err, domain.ErrParticipantNotFound)
	})

	s.Run("flips attended exactly once", func() {
		registered, err := s.registry.Register(s.ctx, "Ann", "1111")
		s.Require().NoError(err)
		s.False(registered.Attended)

		checked, err := s.checkin.CheckIn(s.ctx, registered.Token)
		s.Require().NoError(err)
		s.True(checked.Attended)
		s.Equal(registered.ID, checked.ID)
		s.False(checked.UpdatedAt.Before(registered.UpdatedAt))

		_, err = s.checkin.CheckIn(s.ctx, registered.Token)
		var repeat *domain.AlreadyCheckedInError
		s.Require().ErrorAs(err, &repeat)
		s.True(repeat.Participant.Attended)
		s.Equal(registered.ID, repeat.Participant.ID)
	})

	s.Run("repeat check-ins leave the record untouched", func() {
		registered, err := s.registry.Register(s.ctx, "Bob", "2222")
		s.Require().NoError(err)

		checked, err := s.checkin.CheckIn(s.ctx, registered.Token)
		s.Require().NoError(err)

		for i := 0; i < 3; i++ {
			_, err = s.checkin.CheckIn(s.ctx, registered.Token)
			var repeat *domain.AlreadyCheckedInError
			s.Require().ErrorAs(err, &repeat)
			s.Equal(checked.UpdatedAt, repeat.Participant.UpdatedAt)
		}

		stored, err := s.repo.FindByToken(s.ctx, registered.Token)
		s.Require().NoError(err)
		s.Equal(checked.UpdatedAt, stored.UpdatedAt)
	})
}

func (s *CheckinSuite) TestConcurrentCheckIn() {
	registered, err := s.registry.Register(s.ctx, "Racer", "3333")
	s.Require().NoError(err)

	const goroutines = 25
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = s.checkin.CheckIn(s.ctx, registered.Token)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var repeat *domain.AlreadyCheckedInError
		s.Require().ErrorAs(err, &repeat)
		s.True(repeat.Participant.Attended)
	}
	s.Equal(1, successes, "exactly one scanner observes the transition")

	stored, err := s.repo.FindByToken(s.ctx, registered.Token)
	s.Require().NoError(err)
	s.True(stored.Attended)
}

// TestEndToEnd walks the register → check in → repeat → unknown sequence.
func (s *CheckinSuite) TestEndToEnd() {
	registered, err := s.registry.Register(s.ctx, "Ann", "1111")
	s.Require().NoError(err)
	s.False(registered.Attended)
	s.NotEmpty(registered.Token)

	checked, err := s.checkin.CheckIn(s.ctx, registered.Token)
	s.Require().NoError(err)
	s.True(checked.Attended)

	_, err = s.checkin.CheckIn(s.ctx, registered.Token)
	var repeat *domain.AlreadyCheckedInError
	s.Require().ErrorAs(err, &repeat)
	s.Equal(checked.ID, repeat.Participant.ID)
	s.Equal(checked.UpdatedAt, repeat.Participant.UpdatedAt)

	_, err = s.checkin.CheckIn(s.ctx, "nonexistent-token")
	s.Require().ErrorIs(err, domain.ErrParticipantNotFound)
}

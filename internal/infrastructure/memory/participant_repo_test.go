package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"absensi/internal/domain"
	"absensi/internal/domain/entities"
	"absensi/internal/infrastructure/memory"
)

type ParticipantRepoSuite struct {
	suite.Suite
	repo *memory.ParticipantRepository
	ctx  context.Context
}

func (s *ParticipantRepoSuite) SetupTest() {
	s.repo = memory.NewParticipantRepository()
	s.ctx = context.Background()
}

func TestParticipantRepoSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepoSuite))
}

func (s *ParticipantRepoSuite) newParticipant(nik, token string) *entities.Participant {
	return &entities.Participant{
		ID:    uuid.NewString(),
		Name:  "Peserta " + nik,
		NIK:   nik,
		Token: token,
	}
}

func (s *ParticipantRepoSuite) TestCreate() {
	s.Run("assigns timestamps and clears attended", func() {
		p := s.newParticipant("1001", "tok-1001")
		p.Attended = true // must be ignored
		s.Require().NoError(s.repo.Create(s.ctx, p))
		s.False(p.Attended)
		s.False(p.CreatedAt.IsZero())
		s.Equal(p.CreatedAt, p.UpdatedAt)
	})

	s.Run("rejects duplicate nik", func() {
		s.Require().NoError(s.repo.Create(s.ctx, s.newParticipant("2001", "tok-a")))
		err := s.repo.Create(s.ctx, s.newParticipant("2001", "tok-b"))
		s.Require().ErrorIs(err, domain.ErrNIKTaken)
	})

	s.Run("rejects duplicate token", func() {
		s.Require().NoError(s.repo.Create(s.ctx, s.newParticipant("3001", "tok-dup")))
		err := s.repo.Create(s.ctx, s.newParticipant("3002", "tok-dup"))
		s.Require().ErrorIs(err, domain.ErrTokenTaken)
	})
}

func (s *ParticipantRepoSuite) TestMarkAttended() {
	s.Run("flips and bumps updated_at", func() {
		p := s.newParticipant("4001", "tok-4001")
		s.Require().NoError(s.repo.Create(s.ctx, p))

		time.Sleep(time.Millisecond)
		updated, err := s.repo.MarkAttended(s.ctx, "tok-4001")
		s.Require().NoError(err)
		s.True(updated.Attended)
		s.True(updated.UpdatedAt.After(p.CreatedAt))
	})

	s.Run("second flip reports the stored record", func() {
		p := s.newParticipant("5001", "tok-5001")
		s.Require().NoError(s.repo.Create(s.ctx, p))
		first, err := s.repo.MarkAttended(s.ctx, "tok-5001")
		s.Require().NoError(err)

		_, err = s.repo.MarkAttended(s.ctx, "tok-5001")
		var repeat *domain.AlreadyCheckedInError
		s.Require().ErrorAs(err, &repeat)
		s.Equal(first.UpdatedAt, repeat.Participant.UpdatedAt)
	})

	s.Run("unknown token", func() {
		_, err := s.repo.MarkAttended(s.ctx, "tok-none")
		s.Require().ErrorIs(err, domain.ErrParticipantNotFound)
	})
}

func (s *ParticipantRepoSuite) TestReturnedRecordsDoNotAliasStore() {
	p := s.newParticipant("6001", "tok-6001")
	s.Require().NoError(s.repo.Create(s.ctx, p))

	found, err := s.repo.FindByToken(s.ctx, "tok-6001")
	s.Require().NoError(err)
	found.Attended = true
	found.Name = "mutated"

	stored, err := s.repo.FindByNIK(s.ctx, "6001")
	s.Require().NoError(err)
	s.False(stored.Attended)
	s.NotEqual("mutated", stored.Name)
}

func (s *ParticipantRepoSuite) TestListingAndCounts() {
	for i := 0; i < 5; i++ {
		p := s.newParticipant(fmt.Sprintf("70%02d", i), fmt.Sprintf("tok-70%02d", i))
		s.Require().NoError(s.repo.Create(s.ctx, p))
		time.Sleep(time.Millisecond)
	}
	_, err := s.repo.MarkAttended(s.ctx, "tok-7000")
	s.Require().NoError(err)
	_, err = s.repo.MarkAttended(s.ctx, "tok-7003")
	s.Require().NoError(err)

	s.Run("find all is ordered oldest first", func() {
		all, err := s.repo.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 5)
		for i := 1; i < len(all); i++ {
			s.False(all[i].CreatedAt.Before(all[i-1].CreatedAt))
		}
		s.Equal("7000", all[0].NIK)
	})

	s.Run("find latest is newest first with limit", func() {
		latest, err := s.repo.FindLatest(s.ctx, 3)
		s.Require().NoError(err)
		s.Require().Len(latest, 3)
		s.Equal("7004", latest[0].NIK)
	})

	s.Run("counts", func() {
		total, err := s.repo.Count(s.ctx)
		s.Require().NoError(err)
		s.Equal(int64(5), total)

		attended, err := s.repo.CountAttended(s.ctx)
		s.Require().NoError(err)
		s.Equal(int64(2), attended)
	})
}

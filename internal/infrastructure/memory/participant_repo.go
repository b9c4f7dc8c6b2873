package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"absensi/internal/domain"
	"absensi/internal/domain/entities"
	"absensi/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository keeps the roster in memory behind a single mutex so
// both mutation points (insert, attended flip) are atomic conditional writes,
// matching the guarantees of the Postgres implementation. Intended for tests
// and local development.
type ParticipantRepository struct {
	mu      sync.RWMutex
	byNIK   map[string]*entities.Participant
	byToken map[string]*entities.Participant
}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{
		byNIK:   make(map[string]*entities.Participant),
		byToken: make(map[string]*entities.Participant),
	}
}

func (r *ParticipantRepository) Create(_ context.Context, participant *entities.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNIK[participant.NIK]; ok {
		return domain.ErrNIKTaken
	}
	if _, ok := r.byToken[participant.Token]; ok {
		return domain.ErrTokenTaken
	}
	now := time.Now()
	participant.Attended = false
	participant.CreatedAt = now
	participant.UpdatedAt = now
	stored := *participant
	r.byNIK[stored.NIK] = &stored
	r.byToken[stored.Token] = &stored
	return nil
}

func (r *ParticipantRepository) MarkAttended(_ context.Context, token string) (*entities.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byToken[token]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	if stored.Attended {
		existing := *stored
		return nil, &domain.AlreadyCheckedInError{Participant: &existing}
	}
	stored.Attended = true
	stored.UpdatedAt = time.Now()
	updated := *stored
	return &updated, nil
}

func (r *ParticipantRepository) FindByToken(_ context.Context, token string) (*entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byToken[token]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	found := *stored
	return &found, nil
}

func (r *ParticipantRepository) FindByNIK(_ context.Context, nik string) (*entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byNIK[nik]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	found := *stored
	return &found, nil
}

func (r *ParticipantRepository) FindAll(_ context.Context) ([]entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Participant, 0, len(r.byNIK))
	for _, stored := range r.byNIK {
		out = append(out, *stored)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ParticipantRepository) FindLatest(ctx context.Context, limit int) ([]entities.Participant, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ParticipantRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byNIK)), nil
}

func (r *ParticipantRepository) CountAttended(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, stored := range r.byNIK {
		if stored.Attended {
			count++
		}
	}
	return count, nil
}

package input

import (
	"context"

	"absensi/internal/domain/entities"
)

type CheckinUseCase interface {
	CheckIn(ctx context.Context, token string) (*entities.Participant, error)
}

package input

import (
	"context"

	"absensi/internal/domain/entities"
)

type RegistryUseCase interface {
	Register(ctx context.Context, name, nik string) (*entities.Participant, error)
	List(ctx context.Context) ([]entities.Participant, error)
	Latest(ctx context.Context, limit int) ([]entities.Participant, error)
	Summary(ctx context.Context) (*entities.Summary, error)
}

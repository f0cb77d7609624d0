package profile

import (
	"context"

	"hotelbooking/internal/domain"
)

type Repository interface {
	GetByUserName(ctx context.Context, userName string) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

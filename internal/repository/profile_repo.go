package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserName(ctx context.Context, userName string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		First(&p).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

// Save inserts the profile on first save and updates it afterwards. Two
// concurrent first saves race on the unique user name; the loser updates the
// winner's row.
func (r *ProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	if p.ID != 0 {
		return r.db.WithContext(ctx).Save(p).Error
	}

	err := r.db.WithContext(ctx).Create(p).Error
	if err == nil || !isUniqueViolation(err) {
		return err
	}

	existing, getErr := r.GetByUserName(ctx, p.UserName)
	if getErr != nil {
		return getErr
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(p).Error
}

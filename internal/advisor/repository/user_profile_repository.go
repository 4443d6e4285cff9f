package repository

import (
	"context"
	"errors"

	"crypto-advisor/internal/entity"

	"gorm.io/gorm"
)

// NewUserProfileRepository creates a new GORM-based user profile repository.
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

type userProfileRepository struct {
	db *gorm.DB
}

// FindByID retrieves a user profile by its ID.
func (r *userProfileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

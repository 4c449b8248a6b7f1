package repository

import (
	"context"

	"creel/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	AddExperience(ctx context.Context, userID uint, amount int) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// AddExperience adds amount to the profile's experience and derives the new
// level in a single UPDATE. Both columns are computed in SQL against the
// stored value, so concurrent awards never lose increments. Returns the
// number of rows updated; zero means no profile exists for userID.
func (r *profileRepository) AddExperience(ctx context.Context, userID uint, amount int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]any{
			"experience": gorm.Expr("experience + ?", amount),
			"level":      gorm.Expr("(experience + ?) / ?", amount, models.ExperiencePerLevel),
		})
	return res.RowsAffected, res.Error
}

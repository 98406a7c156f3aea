package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// ProfileService handles biometric profile reads and updates. Reads never
// create rows; EnsureProfile is the explicit initialization step.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile is a pure read. Returns ErrProfileNotFound when the account
// has no profile row; callers render zero-value defaults in that case.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// EnsureProfile creates a blank profile for the account if none exists and
// returns the row either way.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile := models.Profile{UserID: userID, Role: models.RoleUser}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile validates and applies the full editable field set as one
// upsert keyed by the account. Role is not editable here. On validation
// failure nothing is written.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	if fieldErrs := validateProfile(req); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	var profile models.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile = models.Profile{UserID: userID, Role: models.RoleUser}
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(&profile).Error; err != nil {
			return err
		}

		profile.Name = req.Name
		profile.Age = req.Age
		profile.Gender = req.Gender
		profile.HeightCm = req.HeightCm
		profile.WeightKg = req.WeightKg

		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func validateProfile(req *types.UpdateProfileRequest) FieldErrors {
	errs := FieldErrors{}
	if req.Age < 0 {
		errs["age"] = "age must not be negative"
	}
	if req.Gender != "" && req.Gender != models.GenderMale && req.Gender != models.GenderFemale {
		errs["gender"] = "gender must be male or female"
	}
	if req.HeightCm < 0 {
		errs["height_cm"] = "height must be positive"
	}
	if req.WeightKg < 0 {
		errs["weight_kg"] = "weight must be positive"
	}
	return errs
}

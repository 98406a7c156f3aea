package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// ConsumptionService appends food-intake entries to the per-account log.
// The log is append-only: no update or delete paths exist.
type ConsumptionService struct {
	db *gorm.DB
}

func NewConsumptionService(db *gorm.DB) *ConsumptionService {
	return &ConsumptionService{db: db}
}

// Add validates and persists one entry for the account. The date is always
// the server's current day; the request carries no date field at all.
func (s *ConsumptionService) Add(ctx context.Context, userID uuid.UUID, req *types.AddConsumptionRequest) (*models.ConsumptionEntry, error) {
	if fieldErrs := validateConsumption(req); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	entry := models.ConsumptionEntry{
		UserID:   userID,
		ItemName: strings.TrimSpace(req.ItemName),
		Quantity: strings.TrimSpace(req.Quantity),
		Calories: req.Calories,
		Date:     models.Today(),
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListToday returns the account's entries for the server's current day.
func (s *ConsumptionService) ListToday(ctx context.Context, userID uuid.UUID) ([]models.ConsumptionEntry, error) {
	var entries []models.ConsumptionEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, models.Today()).
		Find(&entries).Error
	return entries, err
}

func validateConsumption(req *types.AddConsumptionRequest) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(req.ItemName) == "" {
		errs["item_name"] = "item name is required"
	}
	if req.Calories < 0 {
		errs["calories"] = "calories must be a non-negative integer"
	}
	return errs
}

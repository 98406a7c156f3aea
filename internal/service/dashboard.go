package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// DashboardService computes the calorie budget view: BMR from the profile
// against the calories logged today. Nothing is cached; every view is
// recomputed from the store.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// CalculateBMR estimates the basal metabolic rate from a profile,
// Harris-Benedict style, rounded to two decimals. A missing profile or any
// unset body metric yields 0 rather than an error.
func CalculateBMR(p *models.Profile) float64 {
	if p == nil || p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return 0
	}

	var bmr float64
	if p.Gender == models.GenderMale {
		bmr = 66.47 + 13.75*p.WeightKg + 5.003*p.HeightCm - 6.755*float64(p.Age)
	} else {
		bmr = 655.1 + 9.563*p.WeightKg + 1.850*p.HeightCm - 4.676*float64(p.Age)
	}
	return math.Round(bmr*100) / 100
}

// View assembles the dashboard for an account.
func (s *DashboardService) View(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	var profile models.Profile
	p := &profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p = nil
	}

	today := models.Today()

	var entries []models.ConsumptionEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	consumed := 0
	list := make([]types.ConsumptionEntryResponse, 0, len(entries))
	for _, e := range entries {
		consumed += e.Calories
		list = append(list, types.ConsumptionEntryResponse{
			ID:       e.ID,
			ItemName: e.ItemName,
			Quantity: e.Quantity,
			Calories: e.Calories,
			Date:     e.Date.Local().Format("2006-01-02"),
		})
	}

	return &types.DashboardResponse{
		BMR:           CalculateBMR(p),
		ConsumedToday: consumed,
		Entries:       list,
	}, nil
}

package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
)

// AdminService backs the administrative landing page.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// AdminOverview is the summary shown on the admin landing page.
type AdminOverview struct {
	Users        int64 `json:"users"`
	EntriesToday int64 `json:"entries_today"`
}

func (s *AdminService) Overview(ctx context.Context) (*AdminOverview, error) {
	var overview AdminOverview

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&overview.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.ConsumptionEntry{}).
		Where("date = ?", models.Today()).
		Count(&overview.EntriesToday).Error; err != nil {
		return nil, err
	}

	return &overview, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile holds the biometric data used for the calorie budget. All body
// fields are optional; zero means "not provided yet".
type Profile struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:100" json:"name"`
	Age       int            `json:"age"`
	Gender    string         `gorm:"size:10" json:"gender"`
	HeightCm  float64        `json:"height_cm"`
	WeightKg  float64        `json:"weight_kg"`
	Role      string         `gorm:"size:10;not null;default:'user'" json:"role"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Role == "" {
		p.Role = RoleUser
	}
	return nil
}

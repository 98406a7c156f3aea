package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsumptionEntry is one logged food item. Rows are append-only: the
// application never updates or deletes them, and Date is always stamped
// server-side at creation.
type ConsumptionEntry struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ItemName  string    `gorm:"size:200;not null" json:"item_name"`
	Quantity  string    `gorm:"size:100" json:"quantity"`
	Calories  int       `gorm:"not null" json:"calories"`
	Date      time.Time `gorm:"not null;index" json:"date"`
}

func (e *ConsumptionEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Today returns the server-local midnight used as the Date of new entries
// and as the dashboard's aggregation key.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request body for creating an account.
// The confirmation field must repeat the password exactly.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest carries the credentials plus the role the caller claims to
// hold; the claim is checked against the stored profile role.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=user admin"`
}

// AuthResponse is returned by both registration and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

// UpdateProfileRequest covers the full editable field set of a profile;
// the update is all-or-nothing. Role is deliberately absent.
type UpdateProfileRequest struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

// AddConsumptionRequest has no date field: the entry date is always
// assigned server-side.
type AddConsumptionRequest struct {
	ItemName string `json:"item_name"`
	Quantity string `json:"quantity"`
	Calories int    `json:"calories"`
}

// ConsumptionEntryResponse is one logged item as shown on the dashboard.
type ConsumptionEntryResponse struct {
	ID       uuid.UUID `json:"id"`
	ItemName string    `json:"item_name"`
	Quantity string    `json:"quantity,omitempty"`
	Calories int       `json:"calories"`
	Date     string    `json:"date"`
}

// DashboardResponse is the calorie budget view: basal metabolic rate from
// the profile against what was eaten today.
type DashboardResponse struct {
	BMR           float64                    `json:"bmr"`
	ConsumedToday int                        `json:"consumed_today"`
	Entries       []ConsumptionEntryResponse `json:"consumptions"`
}

// ProfileResponse mirrors the profile form: current values, or zero-value
// defaults when the user has not created a profile yet.
type ProfileResponse struct {
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	Gender    string     `json:"gender"`
	HeightCm  float64    `json:"height_cm"`
	WeightKg  float64    `json:"weight_kg"`
	Role      string     `json:"role"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

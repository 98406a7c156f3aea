package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
	"github.com/RabbiPrimon/Calorie-Counter/internal/testhelpers"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.Profile
		want    float64
	}{
		{
			name:    "male",
			profile: &models.Profile{Gender: models.GenderMale, WeightKg: 70, HeightCm: 175, Age: 25},
			// 66.47 + 13.75*70 + 5.003*175 - 6.755*25
			want: 1735.62,
		},
		{
			name:    "female",
			profile: &models.Profile{Gender: models.GenderFemale, WeightKg: 60, HeightCm: 165, Age: 30},
			// 655.1 + 9.563*60 + 1.850*165 - 4.676*30
			want: 1393.85,
		},
		{
			name: "unspecified gender uses female formula",
			profile: &models.Profile{WeightKg: 60, HeightCm: 165, Age: 30},
			want: 1393.85,
		},
		{name: "nil profile", profile: nil, want: 0},
		{name: "missing weight", profile: &models.Profile{Gender: models.GenderMale, HeightCm: 175, Age: 25}, want: 0},
		{name: "missing height", profile: &models.Profile{Gender: models.GenderMale, WeightKg: 70, Age: 25}, want: 0},
		{name: "missing age", profile: &models.Profile{Gender: models.GenderMale, WeightKg: 70, HeightCm: 175}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CalculateBMR(tt.profile)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewDashboardService(db)

	user := models.User{Username: "empty", Email: "empty@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	view, err := svc.View(context.Background(), user.ID)
	require.NoError(t, err)

	// No profile and no entries: everything degrades to zero, not errors.
	assert.Equal(t, float64(0), view.BMR)
	assert.Equal(t, 0, view.ConsumedToday)
	assert.NotNil(t, view.Entries)
	assert.Len(t, view.Entries, 0)
}

func TestDashboardSumsTodayOnly(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	dashboards := service.NewDashboardService(db)
	consumption := service.NewConsumptionService(db)

	user := models.User{Username: "eater", Email: "eater@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := consumption.Add(context.Background(), user.ID, &types.AddConsumptionRequest{ItemName: "Apple", Calories: 95})
	require.NoError(t, err)
	_, err = consumption.Add(context.Background(), user.ID, &types.AddConsumptionRequest{ItemName: "Rice", Quantity: "1 bowl", Calories: 205})
	require.NoError(t, err)

	// A row from yesterday must not count.
	yesterday := models.ConsumptionEntry{
		UserID:   user.ID,
		ItemName: "Pizza",
		Calories: 800,
		Date:     models.Today().AddDate(0, 0, -1),
	}
	require.NoError(t, db.Create(&yesterday).Error)

	// Another user's entry today must not count either.
	other := models.User{Username: "other", Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	_, err = consumption.Add(context.Background(), other.ID, &types.AddConsumptionRequest{ItemName: "Cake", Calories: 400})
	require.NoError(t, err)

	view, err := dashboards.View(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 300, view.ConsumedToday)
	assert.Len(t, view.Entries, 2)
	for _, e := range view.Entries {
		assert.Equal(t, models.Today().Format("2006-01-02"), e.Date)
	}
}

func TestDashboardUsesProfileBMR(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	dashboards := service.NewDashboardService(db)
	profiles := service.NewProfileService(db)

	user := models.User{Username: "metric", Email: "metric@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := profiles.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		Gender:   models.GenderMale,
		Age:      25,
		HeightCm: 175,
		WeightKg: 70,
	})
	require.NoError(t, err)

	view, err := dashboards.View(context.Background(), user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1735.62, view.BMR, 0.001)
}

func TestTodayIsLocalMidnight(t *testing.T) {
	today := models.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.Now().Day(), today.Day())
}

func TestDashboardUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewDashboardService(db)

	view, err := svc.View(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, float64(0), view.BMR)
	assert.Equal(t, 0, view.ConsumedToday)
}

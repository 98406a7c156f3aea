package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
	"github.com/RabbiPrimon/Calorie-Counter/internal/testhelpers"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

func TestAddConsumptionStampsServerDate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewConsumptionService(db)

	user := models.User{Username: "snacker", Email: "snacker@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	entry, err := svc.Add(context.Background(), user.ID, &types.AddConsumptionRequest{
		ItemName: "Apple",
		Calories: 95,
	})
	require.NoError(t, err)

	assert.Equal(t, models.Today(), entry.Date)
	assert.Equal(t, "Apple", entry.ItemName)
	assert.Equal(t, 95, entry.Calories)
}

func TestAddConsumptionValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewConsumptionService(db)

	user := models.User{Username: "picky", Email: "picky@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	var fieldErrs service.FieldErrors

	_, err := svc.Add(context.Background(), user.ID, &types.AddConsumptionRequest{ItemName: "   ", Calories: 10})
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors for blank item, got %v", err)
	}
	assert.Contains(t, fieldErrs, "item_name")

	_, err = svc.Add(context.Background(), user.ID, &types.AddConsumptionRequest{ItemName: "Apple", Calories: -5})
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors for negative calories, got %v", err)
	}
	assert.Contains(t, fieldErrs, "calories")

	var count int64
	db.Model(&models.ConsumptionEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddConsumptionZeroCalories(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewConsumptionService(db)

	user := models.User{Username: "water", Email: "water@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	// Zero is a valid non-negative calorie count.
	entry, err := svc.Add(context.Background(), user.ID, &types.AddConsumptionRequest{
		ItemName: "Black coffee",
		Calories: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Calories)
}

func TestListTodayExcludesOtherDays(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewConsumptionService(db)

	user := models.User{Username: "daily", Email: "daily@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.Add(context.Background(), user.ID, &types.AddConsumptionRequest{ItemName: "Toast", Calories: 120})
	require.NoError(t, err)

	old := models.ConsumptionEntry{
		UserID:   user.ID,
		ItemName: "Old toast",
		Calories: 120,
		Date:     models.Today().AddDate(0, 0, -3),
	}
	require.NoError(t, db.Create(&old).Error)

	entries, err := svc.ListToday(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Toast", entries[0].ItemName)
}

package services

import (
	"testing"
	"time"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMealRequest() *dto.AddMealRequest {
	return &dto.AddMealRequest{
		Name:     "Grilled chicken salad",
		Calories: 420,
		MealType: "lunch",
		Date:     "2024-01-01",
	}
}

func TestAddAndListRoundTrip(t *testing.T) {
	svc := NewMealService(newTestDB(t))
	userID := uuid.New()

	created, err := svc.Add(userID, validMealRequest())
	require.NoError(t, err)

	meals, err := svc.List(userID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, created.ID, meals[0].ID)
	assert.Equal(t, "Grilled chicken salad", meals[0].Name)
	assert.Equal(t, 420.0, meals[0].Calories)
	assert.Equal(t, "lunch", meals[0].MealType)
	assert.Equal(t, "2024-01-01", meals[0].Date)
}

func TestListFiltersByDateAndUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()
	other := uuid.New()

	base := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	seed := []models.Meal{
		{ID: uuid.New(), UserID: userID, Name: "oats", Calories: 300, MealType: "breakfast", Date: "2024-01-01", LoggedAt: base},
		{ID: uuid.New(), UserID: userID, Name: "soup", Calories: 250, MealType: "dinner", Date: "2024-01-01", LoggedAt: base.Add(10 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "toast", Calories: 200, MealType: "breakfast", Date: "2024-01-02", LoggedAt: base.Add(24 * time.Hour)},
		{ID: uuid.New(), UserID: other, Name: "pasta", Calories: 600, MealType: "lunch", Date: "2024-01-01", LoggedAt: base.Add(4 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	meals, err := svc.List(userID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "soup", meals[0].Name, "most recently logged first")
	assert.Equal(t, "oats", meals[1].Name)
}

func TestDeleteOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	owner := uuid.New()
	stranger := uuid.New()

	meal, err := svc.Add(owner, validMealRequest())
	require.NoError(t, err)

	err = svc.Delete(stranger, meal.ID)
	assert.ErrorIs(t, err, ErrNotMealOwner)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "foreign delete must leave the record intact")

	require.NoError(t, svc.Delete(owner, meal.ID))

	err = svc.Delete(owner, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestAddMealValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.AddMealRequest)
		field  string
	}{
		{"empty name", func(r *dto.AddMealRequest) { r.Name = "" }, "name"},
		{"zero calories", func(r *dto.AddMealRequest) { r.Calories = 0 }, "calories"},
		{"negative calories", func(r *dto.AddMealRequest) { r.Calories = -5 }, "calories"},
		{"unknown meal type", func(r *dto.AddMealRequest) { r.MealType = "brunch" }, "mealType"},
		{"bad date", func(r *dto.AddMealRequest) { r.Date = "01/02/2024" }, "date"},
	}

	svc := NewMealService(newTestDB(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMealRequest()
			tt.mutate(req)

			_, err := svc.Add(uuid.New(), req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScorer struct {
	result    *ScoreResult
	err       error
	calls     int
	lastInput PredictionInput
}

func (f *fakeScorer) Score(_ context.Context, in PredictionInput) (*ScoreResult, error) {
	f.calls++
	f.lastInput = in
	return f.result, f.err
}

func validPredictRequest() *dto.PredictRequest {
	return &dto.PredictRequest{
		ActivityType: "running",
		Weight:       70,
		Height:       175,
		Age:          31,
		Duration:     45,
		HeartRate:    130,
	}
}

func TestPredictPersistsRecord(t *testing.T) {
	db := newTestDB(t)
	scorer := &fakeScorer{result: &ScoreResult{Calories: 320.5, Raw: []byte(`{"success": true, "calories": 320.5}`)}}
	svc := NewCalorieService(db, scorer)
	userID := uuid.New()

	record, err := svc.Predict(context.Background(), userID, validPredictRequest())
	require.NoError(t, err)
	assert.Equal(t, 320.5, record.Calories)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, 1, scorer.calls)
	assert.Equal(t, "running", scorer.lastInput.ActivityType)

	var stored models.PredictionRecord
	require.NoError(t, db.First(&stored, "id = ?", record.ID).Error)
	assert.Equal(t, 320.5, stored.Calories)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, 31, stored.Age)
}

func TestPredictValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.PredictRequest)
		field  string
	}{
		{"missing activity", func(r *dto.PredictRequest) { r.ActivityType = "  " }, "activityType"},
		{"missing weight", func(r *dto.PredictRequest) { r.Weight = 0 }, "weight"},
		{"zero age rejected explicitly", func(r *dto.PredictRequest) { r.Age = 0 }, "age"},
		{"negative duration", func(r *dto.PredictRequest) { r.Duration = -10 }, "duration"},
		{"missing heart rate", func(r *dto.PredictRequest) { r.HeartRate = 0 }, "heartRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			scorer := &fakeScorer{result: &ScoreResult{Calories: 100}}
			svc := NewCalorieService(db, scorer)

			req := validPredictRequest()
			tt.mutate(req)

			_, err := svc.Predict(context.Background(), uuid.New(), req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Zero(t, scorer.calls, "no subprocess may be spawned on invalid input")

			var count int64
			require.NoError(t, db.Model(&models.PredictionRecord{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestPredictScorerFailureNotPersisted(t *testing.T) {
	db := newTestDB(t)
	scorer := &fakeScorer{err: ErrScorerTimeout}
	svc := NewCalorieService(db, scorer)

	_, err := svc.Predict(context.Background(), uuid.New(), validPredictRequest())
	assert.ErrorIs(t, err, ErrScorerTimeout)

	var count int64
	require.NoError(t, db.Model(&models.PredictionRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPredictStorageErrorIsDistinct(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.PredictionRecord{}))

	scorer := &fakeScorer{result: &ScoreResult{Calories: 250}}
	svc := NewCalorieService(db, scorer)

	_, err := svc.Predict(context.Background(), uuid.New(), validPredictRequest())
	assert.ErrorIs(t, err, ErrSavePrediction)
	assert.NotErrorIs(t, err, ErrScorerOutput)
	assert.Equal(t, 1, scorer.calls, "the scorer did succeed")
}

func TestHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalorieService(db, &fakeScorer{})
	userID := uuid.New()
	other := uuid.New()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, rec := range []models.PredictionRecord{
		{ID: uuid.New(), UserID: userID, ActivityType: "running", Calories: 100},
		{ID: uuid.New(), UserID: userID, ActivityType: "cycling", Calories: 200},
		{ID: uuid.New(), UserID: other, ActivityType: "yoga", Calories: 50},
	} {
		rec.Date = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(&rec).Error)
	}

	records, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cycling", records[0].ActivityType, "newest first")
	assert.Equal(t, "running", records[1].ActivityType)
}

package logging

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/calotrack/calorie-backend/internal/database"
	"github.com/calotrack/calorie-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := newTestDB(t)
	handler := NewDBHandler(db)
	log := slog.New(handler)

	log.Error("prediction failed",
		"action", "predict",
		"user_id", "9f6a1c1e-0000-0000-0000-000000000000",
		"error", "scorer timed out",
		"attempt", 1,
	)
	log.Info("this stays out of the table")

	handler.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "prediction failed", rows[0].Message)
	assert.Equal(t, "ERROR", rows[0].Level)
	assert.Equal(t, "predict", rows[0].Action)
	assert.Equal(t, "scorer timed out", rows[0].Error)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, "9f6a1c1e-0000-0000-0000-000000000000", *rows[0].UserID)
	assert.Contains(t, string(rows[0].Extra), `"attempt"`)
}

func TestDBHandlerFlushesFullBatches(t *testing.T) {
	db := newTestDB(t)
	handler := NewDBHandler(db)
	log := slog.New(handler)

	for i := 0; i < flushBatch+5; i++ {
		log.Error("buffer pressure", "seq", i)
	}

	// A full batch is written on the logging goroutine itself, so the rows
	// are visible before Stop is ever called.
	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(flushBatch))

	handler.Stop()

	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.EqualValues(t, flushBatch+5, count, "the remainder lands on Stop")
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	db := newTestDB(t)
	dbHandler := NewDBHandler(db)
	var buf strings.Builder
	multi := NewMultiHandler(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbHandler,
	)
	log := slog.New(multi)

	log.Info("startup complete")
	log.Error("boom", "error", "kaput")
	dbHandler.Stop()

	assert.Contains(t, buf.String(), "startup complete")
	assert.Contains(t, buf.String(), "boom")

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only ERROR+ reaches the table")
}

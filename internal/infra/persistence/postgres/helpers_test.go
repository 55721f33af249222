package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"promopush/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

var testEpoch = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func minutesAfterEpoch(m int) time.Time {
	return testEpoch.Add(time.Duration(m) * time.Minute)
}

func seedPromotion(t *testing.T, db *gorm.DB, title string, text, image *string, createdAt time.Time) int64 {
	t.Helper()

	promotion := &model.PromotionModel{Title: title, Text: text, ImageLink: image, CreatedAt: createdAt}
	require.NoError(t, db.Create(promotion).Error)

	return promotion.ID
}

func strPtr(s string) *string {
	return &s
}

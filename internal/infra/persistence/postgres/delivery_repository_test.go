package postgres

import (
	"context"
	"testing"

	"promopush/internal/domain/entity"
	"promopush/internal/domain/repository"
	"promopush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRepository_CreateRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	record := &entity.DeliveryRecord{Recipient: "a@x.com", Title: "Hi", Body: "There", URL: "/notification"}
	require.NoError(t, repo.CreateRecord(ctx, record))

	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestDeliveryRepository_CreateRecord_UnknownPromotion(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)

	missing := int64(999)
	err := repo.CreateRecord(context.Background(), &entity.DeliveryRecord{
		Recipient:   "a@x.com",
		Title:       "Hi",
		PromotionID: &missing,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrPromotionNotFound)
}

func TestDeliveryRepository_BatchCreateRecords(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	records := []*entity.DeliveryRecord{
		{Recipient: "a@x.com", Title: "Deals", Body: "Hi Alice"},
		{Recipient: "c@x.com", Title: "Deals", Body: "Hi Carol"},
	}
	require.NoError(t, repo.BatchCreateRecords(ctx, records))

	assert.NotZero(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)

	var count int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDeliveryRepository_BatchCreateRecords_AllOrNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	missing := int64(404)
	records := []*entity.DeliveryRecord{
		{Recipient: "a@x.com", Title: "Deals"},
		{Recipient: "b@x.com", Title: "Deals", PromotionID: &missing},
	}
	require.Error(t, repo.BatchCreateRecords(ctx, records))

	var count int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeliveryRepository_FindInbox_JoinsAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	promoID := seedPromotion(t, db, "Summer Sale", strPtr("20% off"), nil, minutesAfterEpoch(0))

	for _, record := range []*entity.DeliveryRecord{
		{Recipient: "a@x.com", Title: "first", CreatedAt: minutesAfterEpoch(1)},
		{Recipient: "a@x.com", Title: "promo", PromotionID: &promoID, CreatedAt: minutesAfterEpoch(2)},
		{Recipient: "a@x.com", Title: "tie-a", CreatedAt: minutesAfterEpoch(3)},
		{Recipient: "a@x.com", Title: "tie-b", CreatedAt: minutesAfterEpoch(3)},
		{Recipient: "b@x.com", Title: "someone else", CreatedAt: minutesAfterEpoch(4)},
	} {
		require.NoError(t, repo.CreateRecord(ctx, record))
	}

	records, err := repo.FindInbox(ctx, "a@x.com")
	require.NoError(t, err)

	titles := make([]string, 0, len(records))
	for _, r := range records {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"tie-b", "tie-a", "promo", "first"}, titles)

	assert.Nil(t, records[0].Promotion)
	require.NotNil(t, records[2].Promotion)
	assert.Equal(t, "Summer Sale", records[2].Promotion.Title)
	require.NotNil(t, records[2].Promotion.Text)
	assert.Equal(t, "20% off", *records[2].Promotion.Text)
	assert.Nil(t, records[2].Promotion.ImageLink)

	_, err = entity.NewDeliveryTimeline(records)
	assert.NoError(t, err)
}

func TestDeliveryRepository_FindInbox_DeletedPromotion(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	promoID := seedPromotion(t, db, "Gone soon", nil, nil, minutesAfterEpoch(0))
	require.NoError(t, repo.CreateRecord(ctx, &entity.DeliveryRecord{
		Recipient:   "a@x.com",
		Title:       "Gone soon",
		PromotionID: &promoID,
	}))
	require.NoError(t, db.Delete(&model.PromotionModel{}, promoID).Error)

	records, err := repo.FindInbox(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Promotion)
	assert.Nil(t, records[0].PromotionID)
}

func TestDeliveryRepository_FindInbox_PromotionWithoutTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	promoID := seedPromotion(t, db, "", strPtr("Flash deal"), nil, minutesAfterEpoch(0))
	require.NoError(t, repo.CreateRecord(ctx, &entity.DeliveryRecord{
		Recipient: "a@x.com", Title: "plain", CreatedAt: minutesAfterEpoch(1),
	}))
	require.NoError(t, repo.CreateRecord(ctx, &entity.DeliveryRecord{
		Recipient: "a@x.com", Title: "Record title", PromotionID: &promoID, CreatedAt: minutesAfterEpoch(2),
	}))

	records, err := repo.FindInbox(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Promotion)
	assert.Equal(t, promoID, records[0].Promotion.ID)
	assert.Empty(t, records[0].Promotion.Title)
	assert.Equal(t, "Record title", records[0].Title)
	assert.Equal(t, "plain", records[1].Title)
}

func TestDeliveryRepository_FindInbox_RejectsInvalidRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)

	require.NoError(t, db.Create(&model.NotificationModel{UserEmail: "a@x.com", Title: ""}).Error)

	_, err := repo.FindInbox(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRow))
}

func TestDeliveryRepository_FindRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	for i, recipient := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		require.NoError(t, repo.CreateRecord(ctx, &entity.DeliveryRecord{
			Recipient: recipient,
			Title:     "msg",
			CreatedAt: minutesAfterEpoch(i),
		}))
	}

	records, err := repo.FindRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c@x.com", records[0].Recipient)
	assert.Equal(t, "b@x.com", records[1].Recipient)

	records, err = repo.FindRecent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a@x.com", records[0].Recipient)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	failure := errors.New("abort")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewDeliveryRepository().BatchCreateRecords(ctx, []*entity.DeliveryRecord{
			{Recipient: "a@x.com", Title: "Deals"},
		}); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	var count int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewDeliveryRepository().BatchCreateRecords(ctx, []*entity.DeliveryRecord{
			{Recipient: "a@x.com", Title: "Deals"},
			{Recipient: "b@x.com", Title: "Deals"},
		})
	})
	require.NoError(t, err)

	records, err := NewDeliveryRepository(db).FindRecent(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

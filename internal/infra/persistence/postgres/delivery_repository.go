package postgres

import (
	"context"

	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/repository"
	"promopush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	recordBatchSize = 200
	inboxOrder      = "notifications.created_at DESC, notifications.id DESC"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateRecord persists one delivery record and fills in its ID and CreatedAt.
func (repo *deliveryRepository) CreateRecord(ctx context.Context, record *entity.DeliveryRecord) error {
	recordM := fromDeliveryRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(recordM).Error; err != nil {
		return translateRecordError(err)
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// BatchCreateRecords persists all records or none of them.
func (repo *deliveryRepository) BatchCreateRecords(ctx context.Context, records []*entity.DeliveryRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.NotificationModel, 0, len(records))
	for _, record := range records {
		recordModels = append(recordModels, fromDeliveryRecordDomain(record))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(recordModels, recordBatchSize).Error
	})
	if err != nil {
		return translateRecordError(err)
	}

	for i, recordM := range recordModels {
		records[i].ID = recordM.ID
		records[i].CreatedAt = recordM.CreatedAt
	}

	return nil
}

// FindInbox returns the recipient's records joined with their promotions, newest first.
func (repo *deliveryRepository) FindInbox(ctx context.Context, recipient string) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Joins("Promotion").
		Where("notifications.user_email = ?", recipient).
		Order(inboxOrder).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inbox records")
	}

	return toDeliveryRecordsDomain(recordModels)
}

// FindRecent returns records of all recipients, newest first.
func (repo *deliveryRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Joins("Promotion").
		Order(inboxOrder).
		Limit(limit).
		Offset(offset).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent records")
	}

	return toDeliveryRecordsDomain(recordModels)
}

func translateRecordError(err error) error {
	if isForeignKeyConstraintViolation(err) {
		return errors.Wrap(repository.ErrPromotionNotFound, err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to write delivery record")
}

// --- Mapper Functions ---

func toDeliveryRecordsDomain(recordModels []*model.NotificationModel) ([]*entity.DeliveryRecord, error) {
	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		record, err := toDeliveryRecordDomain(recordM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// toDeliveryRecordDomain converts a GORM NotificationModel, with its joined
// promotion if any, to a validated domain DeliveryRecord.
func toDeliveryRecordDomain(data *model.NotificationModel) (*entity.DeliveryRecord, error) {
	record := &entity.DeliveryRecord{
		ID:          data.ID,
		CreatedAt:   data.CreatedAt,
		Recipient:   data.UserEmail,
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		PromotionID: data.PromotionID,
	}
	if err := validateRow(record); err != nil {
		return nil, errors.Wrapf(err, "notification %d", data.ID)
	}

	// A left join with no match leaves an empty struct behind on some drivers.
	if data.Promotion != nil && data.Promotion.ID != 0 {
		promotion, err := toPromotionDomain(data.Promotion)
		if err != nil {
			return nil, errors.Wrapf(err, "notification %d", data.ID)
		}
		record.Promotion = promotion
	}

	return record, nil
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord to a GORM NotificationModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord) *model.NotificationModel {
	return &model.NotificationModel{
		ID:          data.ID,
		CreatedAt:   data.CreatedAt,
		UserEmail:   data.Recipient,
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		PromotionID: data.PromotionID,
	}
}

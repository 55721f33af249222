package postgres

import (
	"context"

	"promopush/internal/domain/entity"
	"promopush/internal/domain/repository"
	"promopush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// FindByID retrieves a promotion by its ID.
func (repo *promotionRepository) FindByID(ctx context.Context, id int64) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by ID")
	}

	return toPromotionDomain(&promotionM)
}

// FindByIDs retrieves the promotions that exist among ids, keyed by ID.
func (repo *promotionRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Promotion, error) {
	promotions := make(map[int64]*entity.Promotion, len(ids))
	if len(ids) == 0 {
		return promotions, nil
	}

	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find promotions by IDs")
	}

	for _, promotionM := range promotionModels {
		promotion, err := toPromotionDomain(promotionM)
		if err != nil {
			return nil, err
		}
		promotions[promotion.ID] = promotion
	}

	return promotions, nil
}

// List returns all promotions, newest first.
func (repo *promotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotion, err := toPromotionDomain(promotionM)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, promotion)
	}

	return promotions, nil
}

// --- Mapper Functions ---

// toPromotionDomain converts a GORM PromotionModel to a validated domain Promotion.
func toPromotionDomain(data *model.PromotionModel) (*entity.Promotion, error) {
	promotion := &entity.Promotion{
		ID:        data.ID,
		Title:     data.Title,
		Text:      data.Text,
		ImageLink: data.ImageLink,
		CreatedAt: data.CreatedAt,
	}
	if err := validateRow(promotion); err != nil {
		return nil, errors.Wrapf(err, "promotion %d", data.ID)
	}

	return promotion, nil
}

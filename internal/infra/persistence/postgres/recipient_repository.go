package postgres

import (
	"context"

	"promopush/internal/domain/entity"
	"promopush/internal/domain/repository"
	"promopush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// ListRecipients returns every known recipient ordered by email.
func (repo *recipientRepository) ListRecipients(ctx context.Context) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Order("email ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}

	recipients := make([]*entity.Recipient, 0, len(recipientModels))
	for _, recipientM := range recipientModels {
		recipient := &entity.Recipient{
			Email:       recipientM.Email,
			DisplayName: recipientM.DisplayName,
		}
		if err := validateRow(recipient); err != nil {
			return nil, errors.Wrapf(err, "recipient %q", recipientM.Email)
		}
		recipients = append(recipients, recipient)
	}

	return recipients, nil
}

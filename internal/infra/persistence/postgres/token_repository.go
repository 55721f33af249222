// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// RegisterToken inserts the token, ignoring an existing (user_email, token) pair.
func (repo *tokenRepository) RegisterToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}, {Name: "token"}},
			DoNothing: true,
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register device token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindTokensByRecipient returns the recipient's tokens, oldest first.
func (repo *tokenRepository) FindTokensByRecipient(ctx context.Context, recipient string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_email = ?", recipient).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by recipient")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		token, err := toDeviceTokenDomain(tokenM)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// FindTokensByRecipients returns tokens grouped by recipient; recipients without tokens are absent.
func (repo *tokenRepository) FindTokensByRecipients(ctx context.Context, recipients []string) (map[string][]*entity.DeviceToken, error) {
	grouped := make(map[string][]*entity.DeviceToken)
	if len(recipients) == 0 {
		return grouped, nil
	}

	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_email IN ?", recipients).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by recipients")
	}

	for _, tokenM := range tokenModels {
		token, err := toDeviceTokenDomain(tokenM)
		if err != nil {
			return nil, err
		}
		grouped[token.Recipient] = append(grouped[token.Recipient], token)
	}

	return grouped, nil
}

// DeleteTokens removes the given tokens of the recipient and reports how many rows went away.
func (repo *tokenRepository) DeleteTokens(ctx context.Context, recipient string, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("user_email = ? AND token IN ?", recipient, tokens).
		Delete(&model.DeviceTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a validated domain DeviceToken.
func toDeviceTokenDomain(data *model.DeviceTokenModel) (*entity.DeviceToken, error) {
	token := &entity.DeviceToken{
		Recipient: data.UserEmail,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
	}
	if err := validateRow(token); err != nil {
		return nil, errors.Wrapf(err, "device token %d", data.ID)
	}

	return token, nil
}

// fromDeviceTokenDomain converts a domain DeviceToken to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	return &model.DeviceTokenModel{
		UserEmail: data.Recipient,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
	}
}

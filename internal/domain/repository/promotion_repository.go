// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"promopush/internal/errors"

	"promopush/internal/domain/entity"
)

// ErrPromotionNotFound is returned when a promotion does not exist.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository gives read access to promotions owned by the admin collaborator.
type PromotionRepository interface {
	// FindByID retrieves a promotion by ID.
	FindByID(ctx context.Context, id int64) (*entity.Promotion, error)

	// FindByIDs retrieves the promotions that exist among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Promotion, error)

	// List returns all promotions, newest first.
	List(ctx context.Context) ([]*entity.Promotion, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"promopush/internal/domain/entity"
)

// RecipientRepository is the read-only user directory.
type RecipientRepository interface {
	// ListRecipients returns every known recipient ordered by email.
	ListRecipients(ctx context.Context) ([]*entity.Recipient, error)
}

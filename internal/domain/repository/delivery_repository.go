// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"promopush/internal/domain/entity"
)

// DeliveryRepository is the delivery log.
type DeliveryRepository interface {
	// CreateRecord persists one record and fills in its ID and CreatedAt.
	CreateRecord(ctx context.Context, record *entity.DeliveryRecord) error

	// BatchCreateRecords persists all records as one atomic write and fills in IDs and CreatedAt.
	BatchCreateRecords(ctx context.Context, records []*entity.DeliveryRecord) error

	// FindInbox returns every record of the recipient left-joined with its
	// promotion, ordered by created_at descending then id descending.
	FindInbox(ctx context.Context, recipient string) ([]*entity.DeliveryRecord, error)

	// FindRecent returns records of all recipients, newest first.
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error)
}

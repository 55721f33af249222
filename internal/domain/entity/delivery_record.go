// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"promopush/internal/errors"
)

// DeliveryRecord is the durable proof that a message was dispatched to a
// recipient. One record exists per (recipient, message) regardless of how
// many devices the recipient owns. Records are never mutated.
type DeliveryRecord struct {
	ID          int64     `json:"id"`                                  // Assigned by the store.
	CreatedAt   time.Time `json:"created_at"`                          // Dispatch time.
	Recipient   string    `json:"recipient" validate:"required,email"` // Who was notified.
	Title       string    `json:"title" validate:"required"`           // Plain title as sent.
	Body        string    `json:"body"`                                // Plain body as sent.
	URL         string    `json:"url"`                                 // Link opened on tap.
	PromotionID *int64    `json:"promotion_id,omitempty"`              // Optional rich content reference.

	// Promotion is populated by joined reads; nil when the record has no
	// promotion or the promotion no longer exists.
	Promotion *Promotion `json:"promotion,omitempty"`
}

// ErrTimelineOrder is returned when records are not ordered newest first.
var ErrTimelineOrder = errors.New("delivery records are not ordered newest first")

// DeliveryTimeline is a sequence of delivery records ordered by creation
// time descending. Ties keep the order supplied by the store.
type DeliveryTimeline struct {
	records []*DeliveryRecord
}

// NewDeliveryTimeline wraps records that must already be ordered newest first.
func NewDeliveryTimeline(records []*DeliveryRecord) (*DeliveryTimeline, error) {
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			return nil, errors.Wrapf(ErrTimelineOrder, "record %d at %s follows record %d at %s",
				records[i].ID, records[i].CreatedAt, records[i-1].ID, records[i-1].CreatedAt)
		}
	}

	return &DeliveryTimeline{records: records}, nil
}

// Len returns the number of records in the timeline.
func (t *DeliveryTimeline) Len() int {
	return len(t.records)
}

// Each calls fn for every record from newest to oldest.
func (t *DeliveryTimeline) Each(fn func(record *DeliveryRecord)) {
	for _, r := range t.records {
		fn(r)
	}
}

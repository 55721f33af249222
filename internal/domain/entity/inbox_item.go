// Package entity contains the core business objects of the project.
package entity

import "time"

// InboxItemKind distinguishes plain messages from promotion-backed ones.
type InboxItemKind string

const (
	InboxItemPlain InboxItemKind = "plain"
	InboxItemRich  InboxItemKind = "rich"
)

// InboxItem is a display-ready inbox entry derived from a DeliveryRecord.
// It is recomputed on every inbox read and never persisted.
type InboxItem struct {
	RecordID    int64         `json:"record_id"`
	Kind        InboxItemKind `json:"kind"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	URL         string        `json:"url"`
	ImageURL    *string       `json:"image_url,omitempty"`
	PromotionID *int64        `json:"promotion_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

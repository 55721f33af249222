// Package entity contains the core business objects of the project.
package entity

import "time"

// Promotion is rich notification content managed by the admin collaborator.
// It is read-only from the dispatch and inbox side.
type Promotion struct {
	ID        int64     `json:"id" validate:"required,gt=0"`
	Title     string    `json:"title"`
	Text      *string   `json:"text,omitempty"`
	ImageLink *string   `json:"image_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

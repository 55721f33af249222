// Package entity contains the core business objects of the project.
package entity

// Recipient is a user who can receive notifications. It is owned by the
// external user directory; the core only reads it.
type Recipient struct {
	Email       string `json:"email" validate:"required,email"` // Stable identifier of the recipient.
	DisplayName string `json:"display_name"`                    // Name substituted into personalized bodies.
}

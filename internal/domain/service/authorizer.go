package service

import "context"

// Authorizer is the single source of truth for admin checks.
type Authorizer interface {
	// IsAdmin reports whether the recipient may dispatch notifications.
	IsAdmin(ctx context.Context, recipient string) bool
}

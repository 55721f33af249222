// Package entity contains the core business objects of the project.
package entity

import "time"

// DeviceToken is a push-provider token registered by a recipient's device.
// The pair (Recipient, Token) is unique.
type DeviceToken struct {
	Recipient string    `json:"recipient" validate:"required,email"`               // The recipient owning this token.
	Token     string    `json:"token" validate:"required"`                         // Opaque token issued by the push provider.
	Platform  string    `json:"platform" validate:"required,oneof=web android ios"` // Device platform.
	CreatedAt time.Time `json:"created_at"`                                         // First registration time.
}

// UniqueTokens returns the token strings of tokens with duplicates removed,
// keeping the first occurrence of each.
func UniqueTokens(tokens []*DeviceToken) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == nil || t.Token == "" {
			continue
		}
		if _, ok := seen[t.Token]; ok {
			continue
		}
		seen[t.Token] = struct{}{}
		unique = append(unique, t.Token)
	}

	return unique
}

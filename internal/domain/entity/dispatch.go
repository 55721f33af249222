// Package entity contains the core business objects of the project.
package entity

// TokenError describes a push failure for a single device token.
type TokenError struct {
	Recipient    string `json:"recipient"`
	Token        string `json:"token"`
	Detail       string `json:"detail"`
	Unregistered bool   `json:"unregistered"` // The provider reported the token as invalid or unregistered.
}

// DispatchResult aggregates the outcome of a fan-out. A result exists only
// once delivery records were written, so Logged is always true on success;
// push failures are reported in PerTokenErrors, not as an error.
type DispatchResult struct {
	Logged         bool         `json:"logged"`
	RecordIDs      []int64      `json:"record_ids"`
	Requested      int          `json:"requested"`
	Delivered      int          `json:"delivered"`
	Failed         int          `json:"failed"`
	PerTokenErrors []TokenError `json:"per_token_errors,omitempty"`
}

// BroadcastResult is the DispatchResult of a send-to-all with recipient counts.
type BroadcastResult struct {
	DispatchResult
	Recipients int `json:"recipients"` // Recipients with at least one token.
	Skipped    int `json:"skipped"`    // Recipients without tokens.
}

// InvalidTokensByRecipient groups unregistered tokens by recipient.
func (r *DispatchResult) InvalidTokensByRecipient() map[string][]string {
	grouped := make(map[string][]string)
	for _, e := range r.PerTokenErrors {
		if !e.Unregistered {
			continue
		}
		grouped[e.Recipient] = append(grouped[e.Recipient], e.Token)
	}

	return grouped
}

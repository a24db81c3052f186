package entities

import "time"

// Vote is an immutable ledger entry linking a spent token to a nomination.
// TokenID is unique across the ledger: one vote per spent token.
type Vote struct {
	VoteID       string
	TokenID      string
	NominationID string
	IPAddress    string
	UserAgent    string
	VotedAt      time.Time
}

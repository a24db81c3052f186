package entities

import (
	"strings"
	"time"
)

// VotingToken is a single-use credential authorizing exactly one public vote.
// Code is stored uppercase and compared case-insensitively. ExpiresAt is fixed
// at issuance; IsUsed transitions false to true exactly once and is terminal.
type VotingToken struct {
	TokenID      string
	Code         string
	IsUsed       bool
	NominationID *string
	VotedAt      *time.Time
	IPAddress    string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t VotingToken) Expired(now time.Time) bool {
	return now.UTC().After(t.ExpiresAt.UTC())
}

// CodeLength is the fixed length of issued voting codes.
const CodeLength = 8

// NormalizeCode uppercases a voting code so issue and lookup agree on case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CodeFromID derives an 8-character uppercase alphanumeric code from a
// generated unique identifier.
func CodeFromID(id string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	if len(cleaned) > CodeLength {
		cleaned = cleaned[:CodeLength]
	}
	return strings.ToUpper(cleaned)
}

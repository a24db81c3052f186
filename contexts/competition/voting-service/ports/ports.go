package ports

import (
	"context"
	"time"

	"ignite/contexts/competition/voting-service/domain/entities"
)

// TokenStore holds voting tokens with their use/expiry state.
type TokenStore interface {
	IssueTokens(ctx context.Context, tokens []entities.VotingToken) error
	GetTokenByCode(ctx context.Context, code string) (entities.VotingToken, error)
	ListTokens(ctx context.Context) ([]entities.VotingToken, error)
}

// TokenClaim carries the state written onto a token when it is spent.
type TokenClaim struct {
	TokenID      string
	NominationID string
	IPAddress    string
	VotedAt      time.Time
}

// VoteLedger is the append-only record of cast votes.
//
// ClaimAndRecord flips the token's is_used flag with a conditional update
// guarded on the current false value, appends the vote, and bumps the
// nomination tally, all inside one transaction. It returns the tally after the
// increment. The conditional update is the authoritative double-spend gate: a
// caller that lost the race gets ErrTokenAlreadyUsed and no state changes.
type VoteLedger interface {
	ClaimAndRecord(ctx context.Context, claim TokenClaim, vote entities.Vote) (int, error)
	GetVoteByToken(ctx context.Context, tokenID string) (entities.Vote, bool, error)
	CountVotesByNomination(ctx context.Context, nominationID string) (int, error)
	ListVotes(ctx context.Context) ([]entities.Vote, error)
}

// NominationSummary is the voting-side projection of a teacher nomination,
// enriched with school identity for the public board.
type NominationSummary struct {
	NominationID    string
	SchoolID        string
	TeacherName     string
	Category        string
	AwardType       string
	SchoolName      string
	District        string
	ExperienceYears int
	CurrentPosition string
	Achievements    string
	PublicVotes     int
	Status          string
}

// NominationDirectory reads nomination state owned by the nomination service.
// SetPublicVotes exists for tally reconciliation only; the hot path increments
// through VoteLedger.ClaimAndRecord.
type NominationDirectory interface {
	GetNomination(ctx context.Context, nominationID string) (NominationSummary, error)
	ListOpenNominations(ctx context.Context) ([]NominationSummary, error)
	SetPublicVotes(ctx context.Context, nominationID string, publicVotes int) error
}

type EventEnvelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OccurredAt    time.Time `json:"occurred_at"`
	SourceService string    `json:"source_service"`
	TraceID       string    `json:"trace_id"`
	SchemaVersion int       `json:"schema_version"`
	PartitionKey  string    `json:"partition_key"`
	Data          []byte    `json:"data"`
}

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	OutboxWriter
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

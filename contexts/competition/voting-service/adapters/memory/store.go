package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"ignite/contexts/competition/voting-service/domain/entities"
	domainerrors "ignite/contexts/competition/voting-service/domain/errors"
	"ignite/contexts/competition/voting-service/ports"

	"github.com/google/uuid"
)

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory adapter backing tests and local wiring. One mutex
// spans the claim, the ledger append, and the tally bump so ClaimAndRecord
// keeps the same atomicity the postgres transaction provides.
type Store struct {
	mu sync.RWMutex

	tokens       map[string]entities.VotingToken
	tokensByCode map[string]string
	votes        map[string]entities.Vote
	votesByToken map[string]string
	nominations  map[string]ports.NominationSummary
	outbox       map[string]outboxRecord
}

func NewStore(seed []entities.VotingToken) *Store {
	tokens := make(map[string]entities.VotingToken, len(seed))
	byCode := make(map[string]string, len(seed))
	for _, token := range seed {
		tokens[token.TokenID] = token
		byCode[entities.NormalizeCode(token.Code)] = token.TokenID
	}
	return &Store{
		tokens:       tokens,
		tokensByCode: byCode,
		votes:        make(map[string]entities.Vote),
		votesByToken: make(map[string]string),
		nominations:  make(map[string]ports.NominationSummary),
		outbox:       make(map[string]outboxRecord),
	}
}

// SetNomination seeds the nomination projection for tests.
func (s *Store) SetNomination(item ports.NominationSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominations[strings.TrimSpace(item.NominationID)] = item
}

func (s *Store) IssueTokens(_ context.Context, tokens []entities.VotingToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, token := range tokens {
		code := entities.NormalizeCode(token.Code)
		if _, exists := s.tokensByCode[code]; exists {
			return domainerrors.ErrCodeCollision
		}
	}
	for _, token := range tokens {
		token.Code = entities.NormalizeCode(token.Code)
		s.tokens[token.TokenID] = token
		s.tokensByCode[token.Code] = token.TokenID
	}
	return nil
}

func (s *Store) GetTokenByCode(_ context.Context, code string) (entities.VotingToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tokenID, ok := s.tokensByCode[entities.NormalizeCode(code)]
	if !ok {
		return entities.VotingToken{}, domainerrors.ErrTokenInvalid
	}
	return s.tokens[tokenID], nil
}

func (s *Store) ListTokens(_ context.Context) ([]entities.VotingToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.VotingToken, 0, len(s.tokens))
	for _, token := range s.tokens {
		items = append(items, token)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ClaimAndRecord(_ context.Context, claim ports.TokenClaim, vote entities.Vote) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenID := strings.TrimSpace(claim.TokenID)
	token, ok := s.tokens[tokenID]
	if !ok {
		return 0, domainerrors.ErrTokenInvalid
	}
	if token.IsUsed {
		return 0, domainerrors.ErrTokenAlreadyUsed
	}

	nominationID := strings.TrimSpace(claim.NominationID)
	nomination, ok := s.nominations[nominationID]
	if !ok {
		return 0, domainerrors.ErrNominationNotFound
	}

	votedAt := claim.VotedAt.UTC()
	token.IsUsed = true
	token.NominationID = &nominationID
	token.VotedAt = &votedAt
	token.IPAddress = strings.TrimSpace(claim.IPAddress)
	token.UpdatedAt = votedAt
	s.tokens[tokenID] = token

	s.votes[vote.VoteID] = vote
	s.votesByToken[tokenID] = vote.VoteID

	nomination.PublicVotes++
	s.nominations[nominationID] = nomination
	return nomination.PublicVotes, nil
}

func (s *Store) GetVoteByToken(_ context.Context, tokenID string) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voteID, ok := s.votesByToken[strings.TrimSpace(tokenID)]
	if !ok {
		return entities.Vote{}, false, nil
	}
	return s.votes[voteID], true, nil
}

func (s *Store) CountVotesByNomination(_ context.Context, nominationID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, vote := range s.votes {
		if vote.NominationID == strings.TrimSpace(nominationID) {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListVotes(_ context.Context) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Vote, 0, len(s.votes))
	for _, vote := range s.votes {
		items = append(items, vote)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].VotedAt.Before(items[j].VotedAt)
	})
	return items, nil
}

func (s *Store) GetNomination(_ context.Context, nominationID string) (ports.NominationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.nominations[strings.TrimSpace(nominationID)]
	if !ok {
		return ports.NominationSummary{}, domainerrors.ErrNominationNotFound
	}
	return item, nil
}

func (s *Store) ListOpenNominations(_ context.Context) ([]ports.NominationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.NominationSummary, 0)
	for _, item := range s.nominations {
		switch strings.ToLower(strings.TrimSpace(item.Status)) {
		case "nominated", "shortlisted":
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].NominationID < items[j].NominationID
	})
	return items, nil
}

func (s *Store) SetPublicVotes(_ context.Context, nominationID string, publicVotes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.nominations[strings.TrimSpace(nominationID)]
	if !ok {
		return domainerrors.ErrNominationNotFound
	}
	item.PublicVotes = publicVotes
	s.nominations[strings.TrimSpace(nominationID)] = item
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	if _, exists := s.outbox[outboxID]; exists {
		return domainerrors.ErrConflict
	}
	createdAt := envelope.OccurredAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.outbox[outboxID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:     outboxID,
			EventType:    strings.TrimSpace(envelope.EventType),
			PartitionKey: strings.TrimSpace(envelope.PartitionKey),
			Payload:      payload,
			CreatedAt:    createdAt,
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0, len(s.outbox))
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		items = append(items, row.message)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok {
		return domainerrors.ErrConflict
	}
	row.published = true
	s.outbox[strings.TrimSpace(outboxID)] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

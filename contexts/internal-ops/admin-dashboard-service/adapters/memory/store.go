package memory

import (
	"context"
	"strings"
	"sync"

	"ignite/contexts/internal-ops/admin-dashboard-service/ports"
)

// Store is the seedable in-memory directory used by tests.
type Store struct {
	mu           sync.RWMutex
	schools      map[string]ports.SchoolInfo
	participants []ports.ParticipantRecord
	nominations  []ports.NominationRecord
	evaluators   int
	votes        int
}

func NewStore() *Store {
	return &Store{schools: make(map[string]ports.SchoolInfo)}
}

func (s *Store) SeedSchool(info ports.SchoolInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schools[strings.TrimSpace(info.SchoolID)] = info
}

func (s *Store) SeedParticipant(record ports.ParticipantRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = append(s.participants, record)
}

func (s *Store) SeedNomination(record ports.NominationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominations = append(s.nominations, record)
}

func (s *Store) SetCounts(evaluators int, votes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluators = evaluators
	s.votes = votes
}

func (s *Store) CountSchools(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schools), nil
}

func (s *Store) CountActiveEvaluators(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.evaluators, nil
}

func (s *Store) CountVotes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.votes, nil
}

func (s *Store) ListParticipants(_ context.Context) ([]ports.ParticipantRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.ParticipantRecord(nil), s.participants...), nil
}

func (s *Store) ListNominations(_ context.Context) ([]ports.NominationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.NominationRecord(nil), s.nominations...), nil
}

func (s *Store) GetSchoolInfo(_ context.Context, schoolID string) (ports.SchoolInfo, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.schools[strings.TrimSpace(schoolID)]
	return info, ok, nil
}

var _ ports.Directory = (*Store)(nil)

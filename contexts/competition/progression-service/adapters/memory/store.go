package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ignite/contexts/competition/progression-service/domain/entities"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"

	"github.com/google/uuid"
)

type registrationKey struct {
	schoolID string
	category entities.Category
	level    entities.Level
}

type Store struct {
	mu              sync.RWMutex
	participants    map[string]entities.DrawingParticipant
	byRegistration  map[registrationKey]string
	nominationCount map[string]int
}

func NewStore(seed []entities.DrawingParticipant) *Store {
	store := &Store{
		participants:    make(map[string]entities.DrawingParticipant, len(seed)),
		byRegistration:  make(map[registrationKey]string, len(seed)),
		nominationCount: make(map[string]int),
	}
	for _, participant := range seed {
		store.participants[participant.ParticipantID] = cloneParticipant(participant)
		store.byRegistration[keyOf(participant)] = participant.ParticipantID
	}
	return store
}

// SetNominationCount seeds the dashboard nomination counter for tests.
func (s *Store) SetNominationCount(schoolID string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominationCount[strings.TrimSpace(schoolID)] = count
}

func (s *Store) SaveParticipant(_ context.Context, participant entities.DrawingParticipant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyOf(participant)
	if existingID, ok := s.byRegistration[key]; ok && existingID != participant.ParticipantID {
		return domainerrors.ErrConflict
	}
	s.participants[participant.ParticipantID] = cloneParticipant(participant)
	s.byRegistration[key] = participant.ParticipantID
	return nil
}

func (s *Store) GetParticipant(
	_ context.Context,
	schoolID string,
	category entities.Category,
	level entities.Level,
) (entities.DrawingParticipant, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participantID, ok := s.byRegistration[registrationKey{
		schoolID: strings.TrimSpace(schoolID),
		category: category,
		level:    level,
	}]
	if !ok {
		return entities.DrawingParticipant{}, false, nil
	}
	return cloneParticipant(s.participants[participantID]), true, nil
}

func (s *Store) ListParticipantsBySchool(_ context.Context, schoolID string) ([]entities.DrawingParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.DrawingParticipant, 0)
	for _, participant := range s.participants {
		if participant.SchoolID == strings.TrimSpace(schoolID) {
			items = append(items, cloneParticipant(participant))
		}
	}
	sortParticipants(items)
	return items, nil
}

func (s *Store) ListParticipants(_ context.Context) ([]entities.DrawingParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.DrawingParticipant, 0, len(s.participants))
	for _, participant := range s.participants {
		items = append(items, cloneParticipant(participant))
	}
	sortParticipants(items)
	return items, nil
}

func (s *Store) CountNominationsBySchool(_ context.Context, schoolID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nominationCount[strings.TrimSpace(schoolID)], nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func keyOf(participant entities.DrawingParticipant) registrationKey {
	return registrationKey{
		schoolID: strings.TrimSpace(participant.SchoolID),
		category: participant.Category,
		level:    participant.Level,
	}
}

func sortParticipants(items []entities.DrawingParticipant) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ParticipantID < items[j].ParticipantID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func cloneParticipant(participant entities.DrawingParticipant) entities.DrawingParticipant {
	clone := participant
	clone.Winners = append([]entities.Winner(nil), participant.Winners...)
	if participant.AdvancedFrom != nil {
		from := *participant.AdvancedFrom
		clone.AdvancedFrom = &from
	}
	return clone
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ignite/contexts/competition/nomination-service/domain/entities"
	domainerrors "ignite/contexts/competition/nomination-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	nominations map[string]entities.TeacherNomination
}

func NewStore(seed []entities.TeacherNomination) *Store {
	nominations := make(map[string]entities.TeacherNomination, len(seed))
	for _, nomination := range seed {
		nominations[nomination.NominationID] = cloneNomination(nomination)
	}
	return &Store{nominations: nominations}
}

func (s *Store) SaveNomination(_ context.Context, nomination entities.TeacherNomination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominations[strings.TrimSpace(nomination.NominationID)] = cloneNomination(nomination)
	return nil
}

func (s *Store) GetNomination(_ context.Context, nominationID string) (entities.TeacherNomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nomination, ok := s.nominations[strings.TrimSpace(nominationID)]
	if !ok {
		return entities.TeacherNomination{}, domainerrors.ErrNominationNotFound
	}
	return cloneNomination(nomination), nil
}

func (s *Store) ListNominationsBySchool(_ context.Context, schoolID string) ([]entities.TeacherNomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.TeacherNomination, 0)
	for _, nomination := range s.nominations {
		if nomination.SchoolID == strings.TrimSpace(schoolID) {
			items = append(items, cloneNomination(nomination))
		}
	}
	sortNominations(items)
	return items, nil
}

func (s *Store) ListNominations(_ context.Context) ([]entities.TeacherNomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.TeacherNomination, 0, len(s.nominations))
	for _, nomination := range s.nominations {
		items = append(items, cloneNomination(nomination))
	}
	sortNominations(items)
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortNominations(items []entities.TeacherNomination) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].NominationID < items[j].NominationID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

// cloneNomination copies the maps and slices so callers cannot mutate stored
// state through returned values.
func cloneNomination(nomination entities.TeacherNomination) entities.TeacherNomination {
	clone := nomination
	clone.SubjectsTaught = append([]string(nil), nomination.SubjectsTaught...)
	clone.SupportingDocuments = append([]string(nil), nomination.SupportingDocuments...)
	if nomination.EvaluatorScores != nil {
		scores := make(map[string]int, len(nomination.EvaluatorScores))
		for evaluatorID, score := range nomination.EvaluatorScores {
			scores[evaluatorID] = score
		}
		clone.EvaluatorScores = scores
	}
	if nomination.FinalScore != nil {
		finalScore := *nomination.FinalScore
		clone.FinalScore = &finalScore
	}
	return clone
}

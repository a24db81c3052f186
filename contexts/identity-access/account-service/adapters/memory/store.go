package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ignite/contexts/identity-access/account-service/domain/entities"
	domainerrors "ignite/contexts/identity-access/account-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	schools    map[string]entities.SchoolAccount
	admins     map[string]entities.AdminAccount
	evaluators map[string]entities.EvaluatorAccount
}

func NewStore() *Store {
	return &Store{
		schools:    make(map[string]entities.SchoolAccount),
		admins:     make(map[string]entities.AdminAccount),
		evaluators: make(map[string]entities.EvaluatorAccount),
	}
}

func (s *Store) SaveSchool(_ context.Context, account entities.SchoolAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.schools {
		if existing.Email == account.Email && id != account.AccountID {
			return domainerrors.ErrEmailTaken
		}
	}
	s.schools[account.AccountID] = account
	return nil
}

func (s *Store) GetSchoolByEmail(_ context.Context, email string) (entities.SchoolAccount, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.schools {
		if account.Email == strings.ToLower(strings.TrimSpace(email)) {
			return account, true, nil
		}
	}
	return entities.SchoolAccount{}, false, nil
}

func (s *Store) GetSchool(_ context.Context, accountID string) (entities.SchoolAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.schools[strings.TrimSpace(accountID)]
	if !ok {
		return entities.SchoolAccount{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) SaveAdmin(_ context.Context, account entities.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.admins {
		if existing.Email == account.Email && id != account.AccountID {
			return domainerrors.ErrEmailTaken
		}
	}
	s.admins[account.AccountID] = account
	return nil
}

func (s *Store) GetAdminByEmail(_ context.Context, email string) (entities.AdminAccount, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.admins {
		if account.Email == strings.ToLower(strings.TrimSpace(email)) {
			return account, true, nil
		}
	}
	return entities.AdminAccount{}, false, nil
}

func (s *Store) GetAdmin(_ context.Context, accountID string) (entities.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.admins[strings.TrimSpace(accountID)]
	if !ok {
		return entities.AdminAccount{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) SaveEvaluator(_ context.Context, account entities.EvaluatorAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.evaluators {
		if existing.Email == account.Email && id != account.AccountID {
			return domainerrors.ErrEmailTaken
		}
	}
	s.evaluators[account.AccountID] = account
	return nil
}

func (s *Store) GetEvaluatorByEmail(_ context.Context, email string) (entities.EvaluatorAccount, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.evaluators {
		if account.Email == strings.ToLower(strings.TrimSpace(email)) {
			return account, true, nil
		}
	}
	return entities.EvaluatorAccount{}, false, nil
}

func (s *Store) GetEvaluator(_ context.Context, accountID string) (entities.EvaluatorAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.evaluators[strings.TrimSpace(accountID)]
	if !ok {
		return entities.EvaluatorAccount{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) ListEvaluators(_ context.Context) ([]entities.EvaluatorAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.EvaluatorAccount, 0, len(s.evaluators))
	for _, account := range s.evaluators {
		items = append(items, account)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].AccountID < items[j].AccountID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

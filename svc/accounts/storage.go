package accounts

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Storage persists accounts. Emails are stored normalized and must be unique;
// CreateAccount returns ErrEmailAlreadyExists on conflict.
type Storage interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
}

// MemoryStorage is a process-local Storage.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*Account
	byEmail map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]*Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateAccount(_ context.Context, acc *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[acc.Email]; ok {
		return ErrEmailAlreadyExists
	}
	cp := *acc
	s.byID[acc.ID] = &cp
	s.byEmail[acc.Email] = acc.ID
	return nil
}

func (s *MemoryStorage) GetAccountByEmail(_ context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *MemoryStorage) GetAccountByID(_ context.Context, id uuid.UUID) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

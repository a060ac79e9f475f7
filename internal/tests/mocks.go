package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"userhub/internal/domain"
	"userhub/internal/repository"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It mirrors the document store's contract: hex ObjectID keys,
// merge-on-update, snapshot-on-delete, and ErrInvalidID for keys that
// do not parse.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError  error
	GetAllError  error
	GetByIDError error
	UpdateError  error
	DeleteError  error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser seeds a user, assigning an identifier if absent, and returns
// its hex id.
func (m *MockUserRepository) AddUser(user *domain.User) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.ID.Hex()] = user
	return user.ID.Hex()
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	stored.ID = primitive.NewObjectID()
	m.users[stored.ID.Hex()] = &stored
	// Return a copy to avoid mutation issues.
	copy := stored
	return &copy, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id string, patch *domain.User) (*domain.User, error) {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		user.Name = patch.Name
	}
	if patch.PhoneNumber != nil {
		user.PhoneNumber = patch.PhoneNumber
	}
	if patch.City != nil {
		user.City = patch.City
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return nil, m.DeleteError
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.users, id)
	return user, nil
}

// GetUser returns a stored user for test assertions.
func (m *MockUserRepository) GetUser(id string) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id]
}

// Ensure the mock satisfies the repository interface.
var _ repository.UserRepository = (*MockUserRepository)(nil)

package testutil

import (
	"context"
	"sync"

	"github.com/udisondev/skirmish/internal/model"
)

// MockProfileRepository — in-memory хранилище профилей для unit тестов.
// Поддерживает инъекцию ошибок и считает вызовы.
type MockProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]model.PlayerProfile

	// GetErr / UpdateErr возвращаются вместо обращения к данным, если заданы.
	GetErr    error
	UpdateErr error
	// PartialWrite применяет запись, но всё равно возвращает UpdateErr.
	PartialWrite bool

	GetCalls    int
	UpdateCalls int
}

// NewMockProfileRepository создаёт пустой MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]model.PlayerProfile),
	}
}

// GetProfile возвращает профиль, создавая его с нулевым счётом.
func (m *MockProfileRepository) GetProfile(ctx context.Context, name string) (model.PlayerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls++
	if m.GetErr != nil {
		return model.PlayerProfile{}, m.GetErr
	}

	p, ok := m.profiles[name]
	if !ok {
		p = model.NewPlayerProfile(name)
		m.profiles[name] = p
	}
	return p, nil
}

// UpdateHighScore записывает счёт.
func (m *MockProfileRepository) UpdateHighScore(ctx context.Context, name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls++
	if m.UpdateErr != nil && !m.PartialWrite {
		return m.UpdateErr
	}

	m.profiles[name] = model.PlayerProfile{Name: name, Score: score}
	return m.UpdateErr
}

// Stored возвращает сохранённый профиль напрямую, минуя счётчики.
func (m *MockProfileRepository) Stored(name string) (model.PlayerProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[name]
	return p, ok
}

// Seed кладёт профиль в хранилище, минуя счётчики.
func (m *MockProfileRepository) Seed(p model.PlayerProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.Name] = p
}

// Fail задаёт ошибки для последующих вызовов.
func (m *MockProfileRepository) Fail(getErr, updateErr error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetErr = getErr
	m.UpdateErr = updateErr
}

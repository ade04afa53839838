package service_test

import (
	"context"
	"io"
	"sync"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
)

type productRepoMock struct {
	ListFunc           func(ctx context.Context) ([]domain.Product, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]domain.Product, error)
	SearchFunc         func(ctx context.Context, query string) ([]domain.Product, error)
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Product, error)
	GetByIDsFunc       func(ctx context.Context, ids []string) (map[string]domain.Product, error)
	InsertFunc         func(ctx context.Context, product *domain.Product) error
	UpdateFunc         func(ctx context.Context, product *domain.Product) error
	DeleteFunc         func(ctx context.Context, id string) error
}

func (m *productRepoMock) List(ctx context.Context) ([]domain.Product, error) {
	return m.ListFunc(ctx)
}

func (m *productRepoMock) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return m.ListByCategoryFunc(ctx, category)
}

func (m *productRepoMock) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return m.SearchFunc(ctx, query)
}

func (m *productRepoMock) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *productRepoMock) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	return m.GetByIDsFunc(ctx, ids)
}

func (m *productRepoMock) Insert(ctx context.Context, product *domain.Product) error {
	return m.InsertFunc(ctx, product)
}

func (m *productRepoMock) Update(ctx context.Context, product *domain.Product) error {
	return m.UpdateFunc(ctx, product)
}

func (m *productRepoMock) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

type contactRepoMock struct {
	InsertFunc func(ctx context.Context, message *domain.ContactMessage) error
}

func (m *contactRepoMock) Insert(ctx context.Context, message *domain.ContactMessage) error {
	return m.InsertFunc(ctx, message)
}

// cartRepoMock keeps sequences in memory, mirroring the whole-value rewrite
// discipline of the Redis implementation.
type cartRepoMock struct {
	mu   sync.Mutex
	data map[string][]string
}

func newCartRepoMock() *cartRepoMock {
	return &cartRepoMock{data: make(map[string][]string)}
}

func (m *cartRepoMock) Get(ctx context.Context, cartID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids, ok := m.data[cartID]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (m *cartRepoMock) Put(ctx context.Context, cartID string, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]string, len(ids))
	copy(stored, ids)
	m.data[cartID] = stored
	return nil
}

func (m *cartRepoMock) Clear(ctx context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, cartID)
	return nil
}

type imageStoreMock struct {
	SaveFunc func(filename string, content io.Reader) (string, error)
}

func (m *imageStoreMock) Save(filename string, content io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(filename, content)
	}
	return "/uploads/" + filename, nil
}

// dispatcherMock records published events.
type dispatcherMock struct {
	mu        sync.Mutex
	published []events.Event
}

func (m *dispatcherMock) Publish(ctx context.Context, event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	return nil
}

func (m *dispatcherMock) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (m *dispatcherMock) events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.Event, len(m.published))
	copy(out, m.published)
	return out
}

package customer

import (
	"context"
	"sync"

	"github.com/georgemunganga/emt-api/internal/modules/user"
	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

type memoryRepository struct {
	mu         sync.Mutex
	order      []uuid.UUID
	customers  map[uuid.UUID]Customer
	referenced map[uuid.UUID]bool
	storeOwner map[uuid.UUID]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		customers:  map[uuid.UUID]Customer{},
		referenced: map[uuid.UUID]bool{},
		storeOwner: map[uuid.UUID]bool{},
	}
}

func (m *memoryRepository) Create(_ context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.customers {
		if existing.UserID == c.UserID {
			return errs.ErrConflict
		}
	}
	m.customers[c.ID] = *c
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (m *memoryRepository) List(_ context.Context, filter ListFilter) ([]*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*Customer{}
	for _, id := range m.order {
		c, ok := m.customers[id]
		if !ok {
			continue
		}
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.customers[c.ID]
	if !ok {
		return errs.ErrNotFound
	}
	if !c.IsMerchant && m.storeOwner[c.ID] {
		return errOwnsStores
	}
	existing.PhoneNumber = c.PhoneNumber
	existing.Address = c.Address
	existing.IsMerchant = c.IsMerchant
	m.customers[c.ID] = existing
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return errs.ErrNotFound
	}
	if m.referenced[id] {
		return errs.ErrConflict
	}
	delete(m.customers, id)
	return nil
}

type stubUsers map[string]*user.User

func (s stubUsers) GetUser(_ context.Context, id string) (*user.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

func newStubUsers(users ...*user.User) stubUsers {
	s := stubUsers{}
	for _, u := range users {
		s[u.ID.String()] = u
	}
	return s
}

package payment

import (
	"context"
	"sync"

	"github.com/georgemunganga/emt-api/internal/modules/customer"
	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.Mutex
	order    []uuid.UUID
	payments map[uuid.UUID]Payment
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{payments: map[uuid.UUID]Payment{}}
}

func (m *memoryRepository) Create(_ context.Context, p *Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[p.ID] = *p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func (m *memoryRepository) List(_ context.Context, filter ListFilter) ([]*Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*Payment{}
	for _, id := range m.order {
		p, ok := m.payments[id]
		if !ok {
			continue
		}
		if filter.CustomerID != nil && p.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, &p)
	}
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, p *Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.payments[p.ID]
	if !ok {
		return errs.ErrNotFound
	}
	existing.MerchantName = p.MerchantName
	existing.AccountNumber = p.AccountNumber
	existing.ExpirationDate = p.ExpirationDate
	existing.ZipCode = p.ZipCode
	existing.SecurityCode = p.SecurityCode
	m.payments[p.ID] = existing
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.payments, id)
	return nil
}

type stubCustomers map[string]*customer.Customer

func newStubCustomers(cs ...*customer.Customer) stubCustomers {
	s := stubCustomers{}
	for _, c := range cs {
		s[c.ID.String()] = c
	}
	return s
}

func (s stubCustomers) GetCustomer(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := s[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return c, nil
}

var (
	alice = &customer.Customer{ID: uuid.MustParse("6a0f3c1e-1b2d-4c3e-8f4a-5b6c7d8e9f01"), FirstName: "Alice", LastName: "Moyo"}
	bob   = &customer.Customer{ID: uuid.MustParse("7b1e4d2f-2c3e-4d4f-9a5b-6c7d8e9f0a12"), FirstName: "Bob", LastName: "Banda"}
)

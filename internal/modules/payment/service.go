package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/emt-api/internal/modules/customer"
	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

// CustomerLookup resolves payment owners. customer.Service satisfies it.
type CustomerLookup interface {
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
}

// Service defines payment business logic.
type Service interface {
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
	UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	customers CustomerLookup
}

func NewService(repo Repository, customers CustomerLookup) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	uid, err := errs.ParseID("payment", id)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", id, err)
	}
	return p, nil
}

func (s *service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	owner, err := s.customers.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("customer %s does not exist: %w", req.CustomerID, errs.ErrInvalidReference)
		}
		return nil, err
	}

	p := &Payment{
		ID:            uuid.New(),
		CustomerID:    owner.ID,
		MerchantName:  req.MerchantName,
		AccountNumber: req.AccountNumber,
		ZipCode:       req.ZipCode,
		SecurityCode:  req.SecurityCode,
	}
	if req.ExpirationDate != nil {
		p.ExpirationDate = *req.ExpirationDate
	}
	if req.CreatedDate != nil {
		p.CreatedDate = *req.CreatedDate
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, errs.ErrInvalidReference) {
			return nil, fmt.Errorf("customer %s does not exist: %w", owner.ID, err)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) error {
	uid, err := errs.ParseID("payment", id)
	if err != nil {
		return err
	}
	p := &Payment{
		ID:            uid,
		MerchantName:  req.MerchantName,
		AccountNumber: req.AccountNumber,
		ZipCode:       req.ZipCode,
		SecurityCode:  req.SecurityCode,
	}
	if req.ExpirationDate != nil {
		p.ExpirationDate = *req.ExpirationDate
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("payment %s: %w", id, err)
	}
	return nil
}

func (s *service) DeletePayment(ctx context.Context, id string) error {
	uid, err := errs.ParseID("payment", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("payment %s: %w", id, err)
	}
	return nil
}

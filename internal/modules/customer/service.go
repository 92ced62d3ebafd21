package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/emt-api/internal/modules/user"
	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

// UserLookup resolves the user a customer belongs to. user.Service satisfies it.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
}

// Service defines customer business logic.
type Service interface {
	ListCustomers(ctx context.Context, filter ListFilter) ([]*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) error
	DeleteCustomer(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) Service {
	return &service{repo: repo, users: users}
}

func (s *service) ListCustomers(ctx context.Context, filter ListFilter) ([]*Customer, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	uid, err := errs.ParseID("customer", id)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", id, err)
	}
	return c, nil
}

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	u, err := s.users.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("user %s does not exist: %w", req.UserID, errs.ErrInvalidReference)
		}
		return nil, err
	}

	c := &Customer{
		ID:          uuid.New(),
		UserID:      u.ID,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsMerchant:  req.IsMerchant,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("user %s already has a customer profile: %w", u.ID, errs.ErrConflict)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) error {
	uid, err := errs.ParseID("customer", id)
	if err != nil {
		return err
	}
	c := &Customer{
		ID:          uid,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsMerchant:  req.IsMerchant,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("customer %s: %w", id, err)
	}
	return nil
}

func (s *service) DeleteCustomer(ctx context.Context, id string) error {
	uid, err := errs.ParseID("customer", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("customer %s: %w", id, err)
	}
	return nil
}

package customer

import (
	"strings"

	"github.com/google/uuid"
)

// Customer is the profile attached one-to-one to a user.
type Customer struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PhoneNumber string
	Address     string
	IsMerchant  bool

	// Read from the linked user.
	FirstName string
	LastName  string
}

// FullName is the linked user's first and last name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ListFilter narrows List results. Nil fields match everything.
type ListFilter struct {
	UserID *uuid.UUID
}

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CreateCustomerRequest is the payload for POST /customers.
type CreateCustomerRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	Address     string `json:"address" validate:"required,max=55"`
	IsMerchant  bool   `json:"is_merchant"`
}

// UpdateCustomerRequest is the payload for PUT /customers/{id}. Every field is overwritten.
type UpdateCustomerRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	Address     string `json:"address" validate:"required,max=55"`
	IsMerchant  bool   `json:"is_merchant"`
}

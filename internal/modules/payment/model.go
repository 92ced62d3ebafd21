package payment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Payment is a stored card on file for a customer.
type Payment struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	MerchantName   string
	AccountNumber  string
	ExpirationDate Date
	CreatedDate    Date
	ZipCode        string
	SecurityCode   string
}

// ListFilter narrows List results. Nil fields match everything.
type ListFilter struct {
	CustomerID *uuid.UUID
}

// CreatePaymentRequest is the payload for POST /payments.
type CreatePaymentRequest struct {
	MerchantName   string `json:"merchant_name" validate:"required,max=25"`
	AccountNumber  string `json:"account_number" validate:"required,number,max=25"`
	ExpirationDate *Date  `json:"expiration_date" validate:"required"`
	CreatedDate    *Date  `json:"created_date" validate:"required"`
	ZipCode        string `json:"zip_code" validate:"required,max=10"`
	SecurityCode   string `json:"security_code" validate:"required,number,min=3,max=4"`
	CustomerID     string `json:"customer_id" validate:"required,uuid"`
}

// UpdatePaymentRequest is the payload for PUT /payments/{id}. created_date and
// the owning customer are fixed at creation.
type UpdatePaymentRequest struct {
	MerchantName   string `json:"merchant_name" validate:"required,max=25"`
	AccountNumber  string `json:"account_number" validate:"required,number,max=25"`
	ExpirationDate *Date  `json:"expiration_date" validate:"required"`
	ZipCode        string `json:"zip_code" validate:"required,max=10"`
	SecurityCode   string `json:"security_code" validate:"required,number,min=3,max=4"`
}

const dateLayout = "2006-01-02"

// Date is a calendar day, carried as YYYY-MM-DD on the wire and as a
// DATE column in PostgreSQL.
type Date struct {
	time.Time
}

// NewDate returns the given day at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

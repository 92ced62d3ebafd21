package customer

import (
	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/google/uuid"
)

// customerResource is the JSON form of a Customer.
type customerResource struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	User        string    `json:"user"`
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	IsMerchant  bool      `json:"is_merchant"`
}

func newCustomerResource(c *Customer, links web.Linker) customerResource {
	return customerResource{
		ID:          c.ID,
		URL:         links.URL("customers", c.ID.String()),
		User:        links.URL("users", c.UserID.String()),
		UserID:      c.UserID,
		FullName:    c.FullName(),
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		IsMerchant:  c.IsMerchant,
	}
}

func newCustomerResources(cs []*Customer, links web.Linker) []customerResource {
	out := make([]customerResource, 0, len(cs))
	for _, c := range cs {
		out = append(out, newCustomerResource(c, links))
	}
	return out
}

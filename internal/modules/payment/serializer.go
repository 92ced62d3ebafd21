package payment

import (
	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/google/uuid"
)

// paymentResource is the JSON form of a Payment.
type paymentResource struct {
	ID             uuid.UUID `json:"id"`
	URL            string    `json:"url"`
	MerchantName   string    `json:"merchant_name"`
	AccountNumber  string    `json:"account_number"`
	Customer       string    `json:"customer"`
	CustomerID     uuid.UUID `json:"customer_id"`
	ExpirationDate Date      `json:"expiration_date"`
	CreatedDate    Date      `json:"created_date"`
	ZipCode        string    `json:"zip_code"`
	SecurityCode   string    `json:"security_code"`
}

func newPaymentResource(p *Payment, links web.Linker) paymentResource {
	return paymentResource{
		ID:             p.ID,
		URL:            links.URL("payments", p.ID.String()),
		MerchantName:   p.MerchantName,
		AccountNumber:  p.AccountNumber,
		Customer:       links.URL("customers", p.CustomerID.String()),
		CustomerID:     p.CustomerID,
		ExpirationDate: p.ExpirationDate,
		CreatedDate:    p.CreatedDate,
		ZipCode:        p.ZipCode,
		SecurityCode:   p.SecurityCode,
	}
}

func newPaymentResources(ps []*Payment, links web.Linker) []paymentResource {
	out := make([]paymentResource, 0, len(ps))
	for _, p := range ps {
		out = append(out, newPaymentResource(p, links))
	}
	return out
}

package payment

type Status string

const (
	StatusAuthorized Status = "AUTHORIZED"
	StatusDeclined   Status = "DECLINED"
	StatusRejected   Status = "REJECTED"
)

// PaymentRequest is the merchant's card-payment submission. It holds the full
// card number and CVV and is never stored.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// Payment is the finalized outcome of a payment request.
//
// A rejected payment has no ID and carries only Errors. Authorized and
// declined payments carry everything except Errors.
type Payment struct {
	ID                 string   `json:"id,omitempty"`
	Status             Status   `json:"status"`
	CardNumberLastFour string   `json:"card_number_last_four,omitempty"`
	ExpiryMonth        int      `json:"expiry_month,omitempty"`
	ExpiryYear         int      `json:"expiry_year,omitempty"`
	Currency           string   `json:"currency,omitempty"`
	Amount             int64    `json:"amount,omitempty"`
	Errors             []string `json:"errors,omitempty"`
}

func (p *Payment) Clone() Payment {
	cloned := *p
	if p.Errors != nil {
		cloned.Errors = make([]string, len(p.Errors))
		copy(cloned.Errors, p.Errors)
	}
	return cloned
}

// BankAuthorizationRequest is the acquiring bank's wire request.
type BankAuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type bankAuthorizationResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}

// Authorization is the bank's decision: either Authorized or Declined.
type Authorization interface {
	isAuthorization()
}

type Authorized struct {
	Code string
}

type Declined struct{}

func (Authorized) isAuthorization() {}
func (Declined) isAuthorization()   {}

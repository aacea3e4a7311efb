package payment

import "fmt"

func NewBankAuthorizationRequest(req PaymentRequest) BankAuthorizationRequest {
	return BankAuthorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: FormatExpiry(req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}
}

// FormatExpiry renders MM/YYYY.
func FormatExpiry(month, year int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

// LastFour returns the trailing four characters of a card number.
func LastFour(cardNumber string) string {
	r := []rune(cardNumber)
	if len(r) <= 4 {
		return string(r)
	}
	return string(r[len(r)-4:])
}

func mapRejected(errs []string) *Payment {
	return &Payment{
		Status: StatusRejected,
		Errors: errs,
	}
}

func mapFinalized(id string, status Status, req PaymentRequest) *Payment {
	return &Payment{
		ID:                 id,
		Status:             status,
		CardNumberLastFour: LastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}
}

func statusOf(auth Authorization) Status {
	if _, ok := auth.(Authorized); ok {
		return StatusAuthorized
	}
	return StatusDeclined
}

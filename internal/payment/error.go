package payment

import (
	"errors"
	"fmt"
)

const BankUnavailableMessage = "Bank service is currently unavailable. Please try again later."

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrBankUnavailable          = errors.New("bank unavailable")
	ErrUnexpectedBankResponse   = errors.New("unexpected bank response")
	ErrMissingAuthorizationCode = errors.New("authorized response without authorization code")
)

// BankUnavailableError reports a 5xx answer or a transport failure from the
// acquiring bank. StatusCode is zero for transport failures.
type BankUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *BankUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bank unavailable: status %d", e.StatusCode)
	}
	return fmt.Sprintf("bank unavailable: %v", e.Err)
}

func (e *BankUnavailableError) Unwrap() error {
	return e.Err
}

func (e *BankUnavailableError) Is(target error) bool {
	return target == ErrBankUnavailable
}

// Message is safe to show to the merchant.
func (e *BankUnavailableError) Message() string {
	return BankUnavailableMessage
}

package payment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minCardLength = 14
	maxCardLength = 19
	minCVVLength  = 3
	maxCVVLength  = 4
)

// SupportedCurrencies is ordered so the currency error message is stable.
var SupportedCurrencies = []string{"USD", "GBP", "EUR"}

const (
	MsgCardNumberRequired = "Card number is required"
	MsgCardNumberNumeric  = "Card number must contain only numeric characters"
	MsgCardNumberLength   = "Card number must be between 14-19 characters"
	MsgExpiryMonthRange   = "Expiry month must be between 1-12"
	MsgExpiryInPast       = "Card expiry date must be in the future"
	MsgCurrencyRequired   = "Currency is required"
	MsgAmountPositive     = "Amount must be greater than zero"
	MsgCVVRequired        = "CVV is required"
	MsgCVVFormat          = "CVV must be 3-4 digits"
)

var MsgCurrencyUnsupported = fmt.Sprintf("Currency must be one of: [%s]", strings.Join(SupportedCurrencies, ", "))

type Validator interface {
	Validate(req PaymentRequest) []string
}

// RequestValidator checks a PaymentRequest against the card, expiry,
// currency, amount and CVV rules. Every rule runs; the result lists all
// violations in rule order.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{now: time.Now}
}

func NewRequestValidatorWithClock(now func() time.Time) *RequestValidator {
	return &RequestValidator{now: now}
}

func (v *RequestValidator) Validate(req PaymentRequest) []string {
	var errs []string

	// card number
	if isBlank(req.CardNumber) {
		errs = append(errs, MsgCardNumberRequired)
	} else {
		if !isDigits(req.CardNumber) {
			errs = append(errs, MsgCardNumberNumeric)
		}
		if n := utf8.RuneCountInString(req.CardNumber); n < minCardLength || n > maxCardLength {
			errs = append(errs, MsgCardNumberLength)
		}
	}

	// expiry
	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		errs = append(errs, MsgExpiryMonthRange)
	} else if v.expired(req.ExpiryYear, req.ExpiryMonth) {
		errs = append(errs, MsgExpiryInPast)
	}

	// currency
	if isBlank(req.Currency) {
		errs = append(errs, MsgCurrencyRequired)
	} else if utf8.RuneCountInString(req.Currency) != 3 || !isSupportedCurrency(req.Currency) {
		errs = append(errs, MsgCurrencyUnsupported)
	}

	if req.Amount <= 0 {
		errs = append(errs, MsgAmountPositive)
	}

	// cvv
	if isBlank(req.CVV) {
		errs = append(errs, MsgCVVRequired)
	} else if n := len(req.CVV); n < minCVVLength || n > maxCVVLength || !isDigits(req.CVV) {
		errs = append(errs, MsgCVVFormat)
	}

	return errs
}

// expired reports whether year/month is strictly before the current month.
func (v *RequestValidator) expired(year, month int) bool {
	now := v.now()
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

func isSupportedCurrency(code string) bool {
	upper := strings.ToUpper(code)
	for _, c := range SupportedCurrencies {
		if c == upper {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

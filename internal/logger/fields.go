package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CardLastFour is the only form in which a card number may reach the logs.
func CardLastFour(cardNumber string) zap.Field {
	return zap.String("card_last_four", lastFour(cardNumber))
}

func PaymentID(id string) zap.Field {
	return zap.String("payment_id", id)
}

// Money logs an amount in minor units together with its currency.
func Money(currency string, amount int64) zap.Field {
	return zap.Object("money", money{currency: currency, amount: amount})
}

type money struct {
	currency string
	amount   int64
}

func (m money) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("currency", m.currency)
	enc.AddInt64("amount", m.amount)
	return nil
}

func lastFour(cardNumber string) string {
	r := []rune(cardNumber)
	if len(r) <= 4 {
		// too short to be a card number; never echo it back
		return "****"
	}
	return string(r[len(r)-4:])
}

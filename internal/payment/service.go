package payment

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway/internal/logger"
	"payment-gateway/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service processes card payments and looks them up afterwards.
type Service interface {
	// ProcessPayment returns a REJECTED payment when validation fails, and an
	// AUTHORIZED or DECLINED payment once the bank has answered. Bank
	// failures come back as *BankUnavailableError.
	ProcessPayment(ctx context.Context, req PaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
}

type service struct {
	store     Store
	gateway   BankGateway
	validator Validator
	metrics   *metrics.PaymentMetrics
	newID     func() string
}

func NewService(store Store, gateway BankGateway, validator Validator, m *metrics.PaymentMetrics) Service {
	if m == nil {
		m = metrics.NewPaymentMetrics()
	}
	return &service{
		store:     store,
		gateway:   gateway,
		validator: validator,
		metrics:   m,
		newID:     uuid.NewString,
	}
}

func (s *service) ProcessPayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Payment"),
		zap.String("method", "ProcessPayment"),
	)

	// 1. Validate
	if errs := s.validator.Validate(req); len(errs) > 0 {
		log.Warn("payment request rejected", zap.Strings("errors", errs))
		s.metrics.Rejected.Inc()
		return mapRejected(errs), nil
	}

	log = log.With(logger.CardLastFour(req.CardNumber))
	log.Debug("processing payment request")

	// 2. Authorize
	timer := metrics.StartTimer()
	auth, err := s.gateway.Authorize(ctx, NewBankAuthorizationRequest(req))
	s.metrics.ObserveBankCall(timer)
	if err != nil {
		if errors.Is(err, ErrBankUnavailable) {
			log.Error("bank unavailable", zap.Error(err))
			s.metrics.BankUnavailable.Inc()
			return nil, err
		}
		log.Error("bank authorization failed", zap.Error(err))
		s.metrics.Failed.Inc()
		return nil, fmt.Errorf("authorize payment: %w", err)
	}

	// 3. Record
	p := mapFinalized(s.newID(), statusOf(auth), req)
	log = log.With(logger.PaymentID(p.ID))

	if err := s.store.Put(ctx, p); err != nil {
		log.Error("failed to save payment", zap.Error(err))
		s.metrics.Failed.Inc()
		return nil, fmt.Errorf("save payment: %w", err)
	}

	switch p.Status {
	case StatusAuthorized:
		s.metrics.Authorized.Inc()
	case StatusDeclined:
		s.metrics.Declined.Inc()
	}

	log.Info("payment processed", zap.String("status", string(p.Status)))

	return p, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Payment"),
		zap.String("method", "GetPayment"),
		logger.PaymentID(id),
	)

	log.Debug("fetching payment")

	return s.store.Get(ctx, id)
}

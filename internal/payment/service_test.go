package payment

import (
	"context"
	"errors"
	"testing"

	"payment-gateway/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id string) (*Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Authorize(ctx context.Context, req BankAuthorizationRequest) (Authorization, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Authorization), args.Error(1)
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(req PaymentRequest) []string {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func newTestService(store Store, gw BankGateway) (Service, *metrics.PaymentMetrics) {
	m := metrics.NewPaymentMetrics()
	return NewService(store, gw, newTestValidator(), m), m
}

func TestService_ProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Authorized", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		req := validRequest()
		gw.On("Authorize", ctx, BankAuthorizationRequest{
			CardNumber: "4111111111111111",
			ExpiryDate: "12/2030",
			Currency:   "USD",
			Amount:     1000,
			CVV:        "123",
		}).Return(Authorized{Code: "auth-123"}, nil).Once()
		store.On("Put", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()

		p, err := svc.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, StatusAuthorized, p.Status)
		assert.Equal(t, "1111", p.CardNumberLastFour)
		assert.Equal(t, 12, p.ExpiryMonth)
		assert.Equal(t, 2030, p.ExpiryYear)
		assert.Equal(t, "USD", p.Currency)
		assert.Equal(t, int64(1000), p.Amount)
		assert.Empty(t, p.Errors)

		stored := store.Calls[0].Arguments.Get(1).(*Payment)
		assert.Equal(t, p, stored)
		assert.Equal(t, uint64(1), m.Authorized.Load())
		assert.Equal(t, uint64(1), m.BankCalls.Load())
		gw.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("Declined", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		req := validRequest()
		req.CardNumber = "4111111111111112"
		gw.On("Authorize", ctx, mock.Anything).Return(Declined{}, nil).Once()
		store.On("Put", ctx, mock.Anything).Return(nil).Once()

		p, err := svc.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, StatusDeclined, p.Status)
		assert.Equal(t, "1112", p.CardNumberLastFour)
		assert.Empty(t, p.Errors)
		assert.Equal(t, uint64(1), m.Declined.Load())
		store.AssertExpectations(t)
	})

	t.Run("Rejected", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		req := validRequest()
		req.CardNumber = ""

		p, err := svc.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, StatusRejected, p.Status)
		assert.Empty(t, p.ID)
		assert.Equal(t, []string{MsgCardNumberRequired}, p.Errors)
		assert.Empty(t, p.CardNumberLastFour)
		assert.Zero(t, p.Amount)
		assert.Empty(t, p.Currency)
		assert.Zero(t, p.ExpiryMonth)
		assert.Zero(t, p.ExpiryYear)
		assert.Equal(t, uint64(1), m.Rejected.Load())
		assert.Zero(t, m.BankCalls.Load())
		gw.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("RejectedKeepsValidatorOrder", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		validator := new(MockValidator)
		svc := NewService(store, gw, validator, nil)

		req := validRequest()
		validator.On("Validate", req).Return([]string{MsgCVVFormat, MsgAmountPositive}).Once()

		p, err := svc.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, []string{MsgCVVFormat, MsgAmountPositive}, p.Errors)
		validator.AssertExpectations(t)
		gw.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything)
	})

	t.Run("BankUnavailable", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		bankErr := &BankUnavailableError{StatusCode: 503}
		gw.On("Authorize", ctx, mock.Anything).Return(nil, bankErr).Once()

		p, err := svc.ProcessPayment(ctx, validRequest())

		assert.Nil(t, p)
		assert.Same(t, bankErr, err)
		assert.ErrorIs(t, err, ErrBankUnavailable)
		assert.Equal(t, uint64(1), m.BankUnavailable.Load())
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("UnexpectedBankFailure", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		gw.On("Authorize", ctx, mock.Anything).Return(nil, ErrUnexpectedBankResponse).Once()

		p, err := svc.ProcessPayment(ctx, validRequest())

		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrUnexpectedBankResponse)
		assert.NotErrorIs(t, err, ErrBankUnavailable)
		assert.Equal(t, uint64(1), m.Failed.Load())
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		store := new(MockStore)
		gw := new(MockGateway)
		svc, m := newTestService(store, gw)

		gw.On("Authorize", ctx, mock.Anything).Return(Authorized{Code: "abc"}, nil).Once()
		store.On("Put", ctx, mock.Anything).Return(errors.New("disk full")).Once()

		p, err := svc.ProcessPayment(ctx, validRequest())

		assert.Nil(t, p)
		assert.Error(t, err)
		assert.Equal(t, uint64(1), m.Failed.Load())
		assert.Zero(t, m.Authorized.Load())
	})

	t.Run("FreshIDPerPayment", func(t *testing.T) {
		gw := new(MockGateway)
		svc, _ := newTestService(NewMemoryStore(), gw)
		gw.On("Authorize", ctx, mock.Anything).Return(Authorized{Code: "abc"}, nil)

		first, err := svc.ProcessPayment(ctx, validRequest())
		require.NoError(t, err)
		second, err := svc.ProcessPayment(ctx, validRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestService_GetPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, new(MockGateway))

		expected := authorizedPayment("3f9a3c4e-9b7f-4a55-b1c4-2a1f0c7d9e11")
		store.On("Get", ctx, expected.ID).Return(expected, nil).Once()

		p, err := svc.GetPayment(ctx, expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected, p)
		store.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _ := newTestService(NewMemoryStore(), new(MockGateway))

		p, err := svc.GetPayment(ctx, "never-stored")

		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("RoundTripThroughProcess", func(t *testing.T) {
		gw := new(MockGateway)
		svc, _ := newTestService(NewMemoryStore(), gw)
		gw.On("Authorize", ctx, mock.Anything).Return(Declined{}, nil).Once()

		created, err := svc.ProcessPayment(ctx, validRequest())
		require.NoError(t, err)

		got, err := svc.GetPayment(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

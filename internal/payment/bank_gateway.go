package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"payment-gateway/internal/logger"

	"go.uber.org/zap"
)

const authorizePath = "/payments"

// BankGateway sends authorization requests to the acquiring bank.
type BankGateway interface {
	Authorize(ctx context.Context, req BankAuthorizationRequest) (Authorization, error)
}

type bankGateway struct {
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

// NewBankGateway talks to the bank at baseURL. The client keeps the transport
// defaults: no timeout, no retry.
func NewBankGateway(baseURL string) BankGateway {
	if baseURL == "" {
		logger.L().Warn("bank base URL is empty")
	}

	return &bankGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ----------------- Authorize -----------------

func (b *bankGateway) Authorize(ctx context.Context, authReq BankAuthorizationRequest) (Authorization, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("gateway", "Bank"),
		zap.String("method", "Authorize"),
		logger.CardLastFour(authReq.CardNumber),
		logger.Money(authReq.Currency, authReq.Amount),
	)

	jsonBody, err := json.Marshal(authReq)
	if err != nil {
		log.Error("failed to marshal authorization request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+authorizePath, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Info("sending authorization request to bank")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		log.Error("bank request failed", zap.Error(err))
		return nil, &BankUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		log.Error("bank service unavailable", zap.Int("status", resp.StatusCode))
		return nil, &BankUnavailableError{StatusCode: resp.StatusCode}
	}

	// a body cut off mid-read is a transport failure, not a bank answer
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &BankUnavailableError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("bank returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedBankResponse, resp.StatusCode)
	}

	var res bankAuthorizationResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding bank response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedBankResponse, err)
	}

	if !res.Authorized {
		log.Info("bank declined payment")
		return Declined{}, nil
	}

	if res.AuthorizationCode == nil || *res.AuthorizationCode == "" {
		log.Error("bank authorized payment without authorization code")
		return nil, ErrMissingAuthorizationCode
	}

	log.Info("bank authorized payment", zap.String("authorization_code", *res.AuthorizationCode))
	return Authorized{Code: *res.AuthorizationCode}, nil
}

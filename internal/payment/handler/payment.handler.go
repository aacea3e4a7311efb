package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"payment-gateway/internal/logger"
	"payment-gateway/internal/payment"
	"payment-gateway/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler exposes the payment service over HTTP.
type Handler struct {
	PaymentSvc payment.Service
}

func NewPaymentHandler(svc payment.Service) *Handler {
	return &Handler{PaymentSvc: svc}
}

// Routes mounts the payment endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/payment", h.ProcessPayment)
	r.Get("/payment/{id}", h.GetPayment)
}

// ProcessPayment answers 200 for authorized or declined payments, 400 for
// rejected ones, 503 when the bank is down and 500 otherwise.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(zap.String("handler", "ProcessPayment"))

	var req payment.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request body", zap.Error(err))
		utils.WriteJSONError(w, utils.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	p, err := h.PaymentSvc.ProcessPayment(r.Context(), req)
	if err != nil {
		var bankErr *payment.BankUnavailableError
		if errors.As(err, &bankErr) {
			utils.WriteJSONError(w, bankErr.Message(), http.StatusServiceUnavailable)
			return
		}

		log.Error("unexpected error processing payment", zap.Error(err))
		utils.WriteJSONError(w, utils.MsgUnexpectedError, http.StatusInternalServerError)
		return
	}

	if p.Status == payment.StatusRejected {
		utils.WriteJSON(w, p, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, p, http.StatusOK)
}

// GetPayment answers 404 for ids that are unknown or not UUIDs.
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := logger.FromCtx(r.Context()).With(
		zap.String("handler", "GetPayment"),
		logger.PaymentID(id),
	)

	if _, err := uuid.Parse(id); err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	p, err := h.PaymentSvc.GetPayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Error("unexpected error fetching payment", zap.Error(err))
		utils.WriteJSONError(w, utils.MsgUnexpectedError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, p, http.StatusOK)
}

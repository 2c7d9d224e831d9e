package transport

import (
	"errors"
	"net/http"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/repository"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartPaymentRequest opens a checkout session for a single product.
type StartPaymentRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Method    string `json:"method" validate:"required,oneof=card upi netbanking"`

	CardNumber     string `json:"card_number" validate:"required_if=Method card"`
	ExpiryDate     string `json:"expiry_date" validate:"required_if=Method card"`
	CVV            string `json:"cvv" validate:"required_if=Method card"`
	CardholderName string `json:"cardholder_name" validate:"required_if=Method card"`
	UPIID          string `json:"upi_id" validate:"required_if=Method upi"`
	BankAccount    string `json:"bank_account" validate:"required_if=Method netbanking"`
	IFSCCode       string `json:"ifsc_code" validate:"required_if=Method netbanking"`
}

// PaymentHandler handles HTTP requests for the simulated checkout flow
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", h.Start)
		r.Post("/{id}/submit", h.Submit)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Close)
	})
}

// Start opens a new checkout session in the selecting phase
func (h *PaymentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartPaymentRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Start payment validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	session, err := h.paymentService.Start(r.Context(), productID, domain.PaymentMethod(req.Method), domain.PaymentDetails{
		CardNumber:     req.CardNumber,
		ExpiryDate:     req.ExpiryDate,
		CVV:            req.CVV,
		CardholderName: req.CardholderName,
		UPIID:          req.UPIID,
		BankAccount:    req.BankAccount,
		IFSCCode:       req.IFSCCode,
	})
	if err != nil {
		h.logger.Debug("Start payment failed", zap.Error(err))

		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		if errors.Is(err, service.ErrProductUnavailable) {
			middleware.RespondWithError(w, http.StatusConflict, "product is out of stock")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to start payment")
		return
	}

	h.logger.Info("Payment session started",
		zap.String("session_id", session.ID.String()),
		zap.String("method", string(session.Method)))
	middleware.RespondWithJSON(w, http.StatusCreated, session)
}

// Submit moves a session from selecting into processing
func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	session, err := h.paymentService.Submit(r.Context(), sessionID)
	if err != nil {
		h.logger.Debug("Submit payment failed", zap.Error(err))

		if errors.Is(err, repository.ErrSessionNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "payment session not found")
			return
		}
		if errors.Is(err, service.ErrInvalidPhase) {
			middleware.RespondWithError(w, http.StatusConflict, "payment already submitted")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit payment")
		return
	}

	middleware.RespondWithJSON(w, http.StatusAccepted, session)
}

// Get returns the current state of a checkout session
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	session, err := h.paymentService.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "payment session not found")
			return
		}

		h.logger.Error("Get payment failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get payment")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, session)
}

// Close discards a checkout session. A session that is mid-processing
// cannot be closed.
func (h *PaymentHandler) Close(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	if err := h.paymentService.Close(r.Context(), sessionID); err != nil {
		h.logger.Debug("Close payment failed", zap.Error(err))

		if errors.Is(err, repository.ErrSessionNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "payment session not found")
			return
		}
		if errors.Is(err, service.ErrPaymentInProgress) {
			middleware.RespondWithError(w, http.StatusConflict, "payment is processing and cannot be closed")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to close payment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

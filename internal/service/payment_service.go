package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductUnavailable = errors.New("product is out of stock")
	ErrInvalidPhase       = errors.New("operation not valid in current payment phase")
	ErrPaymentInProgress  = errors.New("payment is already processing")
)

// PaymentListener receives the completion event of a simulated payment.
type PaymentListener func(domain.PaymentCompletedEvent)

// PaymentService drives the simulated checkout flow for single transactions:
// selecting -> processing -> complete. The processing phase resolves after a
// fixed simulated latency and always succeeds; a real gateway integration
// would add declined/timeout states feeding back to selecting.
type PaymentService interface {
	Start(ctx context.Context, productID uuid.UUID, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.PaymentSession, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	Close(ctx context.Context, sessionID uuid.UUID) error
	OnComplete(listener PaymentListener)
	Shutdown()
}

type paymentService struct {
	productRepo repository.ProductRepository
	sessionRepo repository.SessionRepository
	latency     time.Duration
	logger      *zap.Logger

	mu        sync.Mutex
	timers    map[uuid.UUID]*time.Timer
	listeners []PaymentListener
	closed    bool
}

// NewPaymentService creates a new instance of PaymentService. latency is how
// long the simulated gateway takes to confirm a submitted payment.
func NewPaymentService(
	productRepo repository.ProductRepository,
	sessionRepo repository.SessionRepository,
	latency time.Duration,
	logger *zap.Logger,
) PaymentService {
	return &paymentService{
		productRepo: productRepo,
		sessionRepo: sessionRepo,
		latency:     latency,
		logger:      logger,
		timers:      make(map[uuid.UUID]*time.Timer),
	}
}

// OnComplete registers a listener for payment-completed events. Listeners
// must be registered before the service starts accepting submissions.
func (s *paymentService) OnComplete(listener PaymentListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Start opens a checkout session in the selecting phase for the given
// product. The amount is captured from the catalog price.
func (s *paymentService) Start(ctx context.Context, productID uuid.UUID, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.PaymentSession, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if !product.InStock {
		return nil, ErrProductUnavailable
	}

	session := &domain.PaymentSession{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Artisan:     product.Artisan,
		Amount:      product.Price,
		Currency:    "INR",
		Method:      method,
		Details:     details,
		Phase:       domain.PhaseSelecting,
		CreatedAt:   time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	s.logger.Info("Payment session started",
		zap.String("session_id", session.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.String("method", string(method)),
		zap.Int("amount", session.Amount),
	)

	return session, nil
}

// Submit moves a session from selecting to processing and schedules the
// simulated gateway confirmation. No field-level verification of the payment
// details happens here; the simulated flow has no failure path.
func (s *paymentService) Submit(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment session: %w", err)
	}
	if session.Phase != domain.PhaseSelecting {
		return nil, ErrInvalidPhase
	}

	session.Phase = domain.PhaseProcessing
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update payment session: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.New("payment service is shut down")
	}
	s.timers[session.ID] = time.AfterFunc(s.latency, func() {
		s.complete(session.ID)
	})
	s.mu.Unlock()

	s.logger.Info("Payment submitted",
		zap.String("session_id", session.ID.String()),
		zap.Duration("latency", s.latency),
	)

	return session, nil
}

// complete is the timer callback moving a session to its terminal phase. A
// session whose timer was cancelled before firing never reaches here.
func (s *paymentService) complete(sessionID uuid.UUID) {
	s.mu.Lock()
	if _, pending := s.timers[sessionID]; !pending || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, sessionID)
	listeners := make([]PaymentListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	ctx := context.Background()
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		// Session was discarded while the timer was pending; the
		// result is dropped.
		return
	}
	if session.Phase != domain.PhaseProcessing {
		return
	}

	now := time.Now()
	session.Phase = domain.PhaseComplete
	session.TransactionID = newTransactionID()
	session.CompletedAt = now

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		s.logger.Error("Failed to complete payment session",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		return
	}

	event := domain.PaymentCompletedEvent{
		TransactionID: session.TransactionID,
		Amount:        session.Amount,
		Currency:      session.Currency,
		Method:        session.Method,
		ProductID:     session.ProductID,
		Timestamp:     now,
	}

	s.logger.Info("Payment completed",
		zap.String("session_id", session.ID.String()),
		zap.String("transaction_id", session.TransactionID),
		zap.Int("amount", session.Amount),
	)

	for _, listener := range listeners {
		listener(event)
	}
}

// Get returns the current state of a session.
func (s *paymentService) Get(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment session: %w", err)
	}
	return session, nil
}

// Close discards a session. Cancelling is only possible while the session is
// still selecting; once processing has begun the flow must run to completion,
// after which Close dismisses the terminal state.
func (s *paymentService) Close(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to find payment session: %w", err)
	}
	if session.Phase == domain.PhaseProcessing {
		return ErrPaymentInProgress
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete payment session: %w", err)
	}

	s.logger.Info("Payment session closed",
		zap.String("session_id", sessionID.String()),
		zap.String("phase", string(session.Phase)),
	)
	return nil
}

// Shutdown stops every pending completion timer so no callback fires after
// the owning server is gone.
func (s *paymentService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// newTransactionID allocates a TXN-prefixed uppercase alphanumeric token.
// Backing it with a UUID keeps collisions out even though the flow never
// persists transactions.
func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN" + strings.ToUpper(raw[:12])
}

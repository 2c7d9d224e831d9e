package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is one of the supported checkout methods.
type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetBanking PaymentMethod = "netbanking"
)

// PaymentPhase is the state of a simulated checkout. Phases only move
// forward: selecting -> processing -> complete.
type PaymentPhase string

const (
	PhaseSelecting  PaymentPhase = "selecting"
	PhaseProcessing PaymentPhase = "processing"
	PhaseComplete   PaymentPhase = "complete"
)

// PaymentDetails carries the raw per-method input fields. The simulated
// gateway performs no field-level verification beyond request shape.
type PaymentDetails struct {
	CardNumber     string `json:"card_number,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	CVV            string `json:"-"`
	CardholderName string `json:"cardholder_name,omitempty"`
	UPIID          string `json:"upi_id,omitempty"`
	BankAccount    string `json:"bank_account,omitempty"`
	IFSCCode       string `json:"ifsc_code,omitempty"`
}

// PaymentSession tracks one simulated checkout flow from method selection to
// completion. Sessions are discarded when the flow is closed.
type PaymentSession struct {
	ID            uuid.UUID      `json:"id"`
	ProductID     uuid.UUID      `json:"product_id"`
	ProductName   string         `json:"product_name"`
	Artisan       string         `json:"artisan"`
	Amount        int            `json:"amount"`
	Currency      string         `json:"currency"`
	Method        PaymentMethod  `json:"method"`
	Details       PaymentDetails `json:"details"`
	Phase         PaymentPhase   `json:"phase"`
	TransactionID string         `json:"transaction_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   time.Time      `json:"completed_at,omitzero"`
}

// PaymentCompletedEvent is emitted once a session reaches the complete phase.
type PaymentCompletedEvent struct {
	TransactionID string        `json:"transaction_id"`
	Amount        int           `json:"amount"`
	Currency      string        `json:"currency"`
	Method        PaymentMethod `json:"method"`
	ProductID     uuid.UUID     `json:"product_id"`
	Timestamp     time.Time     `json:"timestamp"`
}

package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"
	"artisan-bazaar/internal/seed"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newPaymentRouter(t *testing.T, latency time.Duration) chi.Router {
	t.Helper()
	paymentService := service.NewPaymentService(
		repository.NewProductRepository(seed.Products()),
		repository.NewSessionRepository(),
		latency,
		zap.NewNop(),
	)
	t.Cleanup(paymentService.Shutdown)

	router := chi.NewRouter()
	NewPaymentHandler(paymentService, zap.NewNop()).RegisterRoutes(router)
	return router
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) domain.PaymentSession {
	t.Helper()
	var session domain.PaymentSession
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("invalid session body: %v", err)
	}
	return session
}

func TestPaymentEndpoints_FullFlow(t *testing.T) {
	router := newPaymentRouter(t, 20*time.Millisecond)

	rec := postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID: seed.ProductBrassBowl.String(),
		Method:    "upi",
		UPIID:     "buyer@upi",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	session := decodeSession(t, rec)
	if session.Phase != domain.PhaseSelecting || session.Amount != 2200 {
		t.Fatalf("unexpected session: %+v", session)
	}

	rec = postJSON(t, router, "/api/payments/"+session.ID.String()+"/submit", nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	// Poll until the simulated gateway confirms
	deadline := time.Now().Add(2 * time.Second)
	for {
		req := httptest.NewRequest(http.MethodGet, "/api/payments/"+session.ID.String(), nil)
		getRec := httptest.NewRecorder()
		router.ServeHTTP(getRec, req)
		if getRec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", getRec.Code)
		}
		got := decodeSession(t, getRec)
		if got.Phase == domain.PhaseComplete {
			if got.TransactionID == "" {
				t.Fatal("completed session missing transaction id")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("payment never completed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// A completed session can be dismissed
	req := httptest.NewRequest(http.MethodDelete, "/api/payments/"+session.ID.String(), nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	if delRec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delRec.Code)
	}
}

func TestPaymentEndpoints_ValidationAndConflicts(t *testing.T) {
	router := newPaymentRouter(t, time.Second)

	// Card method without card fields
	rec := postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID: seed.ProductBrassBowl.String(),
		Method:    "card",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing card fields, got %d", rec.Code)
	}

	// Unknown method
	rec = postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID: seed.ProductBrassBowl.String(),
		Method:    "crypto",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown method, got %d", rec.Code)
	}

	// Out-of-stock product
	rec = postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID: seed.ProductCeramicTeaSet.String(),
		Method:    "upi",
		UPIID:     "buyer@upi",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for out-of-stock product, got %d", rec.Code)
	}

	// Unknown product
	rec = postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID: "00000000-0000-0000-0000-000000000000",
		Method:    "upi",
		UPIID:     "buyer@upi",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}

	// Closing mid-processing is refused
	rec = postJSON(t, router, "/api/payments", StartPaymentRequest{
		ProductID:   seed.ProductSilverJewelry.String(),
		Method:      "netbanking",
		BankAccount: "000111222333",
		IFSCCode:    "HDFC0001234",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	session := decodeSession(t, rec)

	rec = postJSON(t, router, "/api/payments/"+session.ID.String()+"/submit", nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	rec = postJSON(t, router, "/api/payments/"+session.ID.String()+"/submit", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for double submit, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/payments/"+session.ID.String(), nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	if delRec.Code != http.StatusConflict {
		t.Fatalf("expected 409 closing a processing payment, got %d", delRec.Code)
	}
}

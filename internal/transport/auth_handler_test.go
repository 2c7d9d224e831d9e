package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisan-bazaar/internal/repository"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	custommiddleware "artisan-bazaar/internal/middleware"
)

const testJWTSecret = "test-secret-key"

func newAuthRouter() chi.Router {
	authService := service.NewAuthService(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		testJWTSecret,
		0,
	)
	logger := zap.NewNop()

	router := chi.NewRouter()
	NewAuthHandler(authService, logger).RegisterRoutes(router, custommiddleware.AuthMiddleware(testJWTSecret, logger))
	return router
}

func postJSON(t *testing.T, router chi.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// Feature: artisan-marketplace, Property 17: Invalid signup data is rejected
// Validates: Requirements 5.2, 5.3
func TestProperty_InvalidSignupDataIsRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("signup with invalid data returns validation errors and no tokens", prop.ForAll(
		func(invalidCase int) bool {
			router := newAuthRouter()

			var reqBody SignupRequest
			switch invalidCase % 4 {
			case 0:
				// Empty name
				reqBody = SignupRequest{
					Email:           "valid@example.com",
					Password:        "ValidPass123",
					ConfirmPassword: "ValidPass123",
					Location:        "Jaipur, RJ",
				}
			case 1:
				// Malformed email
				reqBody = SignupRequest{
					Name:            "Asha",
					Email:           "not-an-email",
					Password:        "ValidPass123",
					ConfirmPassword: "ValidPass123",
					Location:        "Jaipur, RJ",
				}
			case 2:
				// Password too short
				reqBody = SignupRequest{
					Name:            "Asha",
					Email:           "valid@example.com",
					Password:        "short",
					ConfirmPassword: "short",
					Location:        "Jaipur, RJ",
				}
			case 3:
				// Confirmation does not match
				reqBody = SignupRequest{
					Name:            "Asha",
					Email:           "valid@example.com",
					Password:        "ValidPass123",
					ConfirmPassword: "Different123",
					Location:        "Jaipur, RJ",
				}
			}

			rec := postJSON(t, router, "/api/auth/signup", reqBody)

			if rec.Code != http.StatusBadRequest {
				t.Logf("FAIL: Expected 400 for case %d, got %d", invalidCase%4, rec.Code)
				return false
			}

			var resp map[string]interface{}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Logf("FAIL: Invalid response body: %v", err)
				return false
			}
			if _, hasToken := resp["access_token"]; hasToken {
				t.Logf("FAIL: Rejected signup still returned a token")
				return false
			}

			return true
		},
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSignupThenLogin_RoundTrip(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(t, router, "/api/auth/signup", SignupRequest{
		Name:            "Asha Verma",
		Email:           "asha@example.com",
		Password:        "ValidPass123",
		ConfirmPassword: "ValidPass123",
		Location:        "Jaipur, RJ",
		Role:            "seller",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var signupResp LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&signupResp); err != nil {
		t.Fatalf("invalid signup response: %v", err)
	}
	if signupResp.AccessToken == "" || signupResp.RefreshToken == "" {
		t.Fatal("signup response missing tokens")
	}
	if signupResp.User.Role != "seller" {
		t.Fatalf("unexpected role: %s", signupResp.User.Role)
	}

	// The stored account authenticates with its real password
	rec = postJSON(t, router, "/api/auth/login", LoginRequest{
		Email:    "asha@example.com",
		Password: "ValidPass123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&loginResp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if loginResp.User.Name != "Asha Verma" {
		t.Fatalf("expected the stored account, got %q", loginResp.User.Name)
	}

	// The profile endpoint accepts the issued token
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.AccessToken)
	profileRec := httptest.NewRecorder()
	router.ServeHTTP(profileRec, req)
	if profileRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from profile, got %d", profileRec.Code)
	}

	// And the wrong password is refused
	rec = postJSON(t, router, "/api/auth/login", LoginRequest{
		Email:    "asha@example.com",
		Password: "WrongPass123",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
}

func TestLogin_UnknownEmailYieldsDemoProfile(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(t, router, "/api/auth/login", LoginRequest{
		Email:    "visitor@example.com",
		Password: "whatever1",
		Role:     "admin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.User.Name != "Platform Admin" || resp.User.Role != "admin" {
		t.Fatalf("unexpected demo profile: %+v", resp.User)
	}
}

func TestRefreshAndLogout_Flow(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(t, router, "/api/auth/login", LoginRequest{
		Email:    "visitor@example.com",
		Password: "whatever1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var loginResp LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&loginResp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	rec = postJSON(t, router, "/api/auth/refresh", RefreshRequest{RefreshToken: loginResp.RefreshToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from refresh, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout",
		bytes.NewReader([]byte(`{"refresh_token":"`+loginResp.RefreshToken+`"}`)))
	req.Header.Set("Authorization", "Bearer "+loginResp.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	logoutRec := httptest.NewRecorder()
	router.ServeHTTP(logoutRec, req)
	if logoutRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d", logoutRec.Code)
	}

	rec = postJSON(t, router, "/api/auth/refresh", RefreshRequest{RefreshToken: loginResp.RefreshToken})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

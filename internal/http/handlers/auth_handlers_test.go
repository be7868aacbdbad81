package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/beerstock/internal/http/handlers"
)

func TestRegisterAndLogin(t *testing.T) {
	r := newRouter(t)
	creds := handler.CredentialsRequest{Username: "alice", Password: "secret1"}

	w := doJSON(r, http.MethodPost, "/register", creds)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if reg.Token == "" {
		t.Error("expected a token on registration")
	}

	w = doJSON(r, http.MethodPost, "/register", creds)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate user, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/login", creds)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var login handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	claims, err := jwtManager.ParseToken(login.Token)
	if err != nil {
		t.Fatalf("login token does not parse: %v", err)
	}
	if claims.Username != "alice" || claims.Role != "user" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newRouter(t)
	doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "alice", Password: "secret1"})

	tests := []struct {
		name  string
		creds handler.CredentialsRequest
	}{
		{name: "wrong password", creds: handler.CredentialsRequest{Username: "alice", Password: "secret2"}},
		{name: "unknown user", creds: handler.CredentialsRequest{Username: "bob", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/login", tt.creds)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRegister_Invalid(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "al", Password: "123"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp handler.ValidationErrorsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected errors for username and password, got %+v", resp.Errors)
	}
}

func TestProtectedRoutes(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/beers", beerRequest("Brahma", 1, 10))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/beers", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected reads to stay public, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "alice", Password: "secret1"})
	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	bearer := "Bearer " + reg.Token
	w = doJSON(r, http.MethodPost, "/api/v1/beers", beerRequest("Brahma", 1, 10), "Authorization", bearer)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPatch, "/api/v1/beers/1/increment", handler.QuantityRequest{Quantity: intPtr(1)})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for increment without token, got %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, "/api/v1/beers/1", nil, "Authorization", bearer)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 with token, got %d", w.Code)
	}
}

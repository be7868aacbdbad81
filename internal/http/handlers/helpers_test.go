package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/auth"
	handler "github.com/rogerio-castellano/beerstock/internal/http/handlers"
	"github.com/rogerio-castellano/beerstock/internal/http/router"
	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"github.com/rogerio-castellano/beerstock/internal/service"
	"go.uber.org/zap"
)

var (
	beerRepo     *repo.InMemoryBeerRepository
	movementRepo *repo.InMemoryMovementRepository
	userRepo     *repo.InMemoryUserRepository
	jwtManager   *auth.JWTManager
)

// setupTestRepos wires fresh in-memory repositories into the handlers.
func setupTestRepos(t *testing.T) {
	t.Helper()

	beerRepo = repo.NewInMemoryBeerRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	userRepo = repo.NewInMemoryUserRepository()
	jwtManager = auth.NewJWTManager("test-secret", time.Minute)

	handler.SetLogger(zap.NewNop())
	handler.SetBeerService(service.NewBeerService(beerRepo, zap.NewNop()))
	handler.SetMovementRepo(movementRepo)
	handler.SetUserRepo(userRepo)
	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository(beerRepo, movementRepo))
	handler.SetJWTManager(jwtManager)
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	setupTestRepos(t)
	return router.NewRouter(router.Options{})
}

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	setupTestRepos(t)
	return router.NewRouter(router.Options{TokenParser: jwtManager})
}

func intPtr(v int) *int { return &v }

func beerRequest(name string, quantity, max int) handler.BeerRequest {
	return handler.BeerRequest{
		Name:     name,
		Brand:    "Ambev",
		Max:      intPtr(max),
		Quantity: intPtr(quantity),
		Type:     string(models.Lager),
	}
}

func doJSON(r http.Handler, method, path string, payload any, headers ...string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBeer(t *testing.T, r http.Handler, b handler.BeerRequest) handler.BeerResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/beers", b)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.BeerResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func adjustBeer(r http.Handler, id int64, op string, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPatch, fmt.Sprintf("/api/v1/beers/%d/%s", id, op), handler.QuantityRequest{Quantity: intPtr(quantity)})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding error response: %v", err)
	}
	return resp.Error
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

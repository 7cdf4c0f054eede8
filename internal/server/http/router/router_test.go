package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/fintrack/internal/app"
	"github.com/polkiloo/fintrack/internal/config"
	pkgAuth "github.com/polkiloo/fintrack/internal/pkg/auth"
	"github.com/polkiloo/fintrack/internal/server/http/dto"
	testhelpers "github.com/polkiloo/fintrack/internal/test"
	"github.com/polkiloo/fintrack/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	users := testhelpers.NewUserRepositoryStub()
	transactions := &testhelpers.TransactionRepositoryStub{}

	strategy := pkgAuth.NewHMACStrategy("router-test-secret", pkgAuth.Options{TTL: time.Hour})
	hasher := pkgAuth.NewBcryptHasher(bcrypt.MinCost)

	facade := app.NewLedgerFacade(
		usecase.NewAuthUseCase(users, hasher, strategy),
		usecase.NewTransactionUseCase(transactions),
	)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, testhelpers.HealthStub{}, cfg, logger)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterLedgerLifecycle(t *testing.T) {
	engine := newTestRouter(t, &config.Config{})

	resp := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.AuthRequest{Username: "alice", Password: "pass123"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/register", "", dto.AuthRequest{Username: "alice", Password: "other"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/login", "", dto.AuthRequest{Username: "alice", Password: "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/login", "", dto.AuthRequest{Username: "alice", Password: "pass123"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	var login dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if login.Token == "" {
		t.Fatal("login: expected non-empty token")
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", "not-a-real-token", nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("malformed token: expected 403, got %d", resp.Code)
	}

	amount := 4.5
	resp = doJSON(t, engine, http.MethodPost, "/api/expenses", login.Token, dto.TransactionRequest{Description: "Coffee", Amount: &amount, Type: "expense"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var created dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.ID == "" || created.Description != "Coffee" || created.Amount != 4.5 || created.Type != "expense" {
		t.Fatalf("unexpected created record: %+v", created)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", login.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var records []dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal list response: %v", err)
	}
	if len(records) != 1 || records[0].ID != created.ID {
		t.Fatalf("expected exactly the created record, got %+v", records)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/summary", login.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", resp.Code)
	}
	var summary dto.SummaryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal summary response: %v", err)
	}
	if summary.Expense != 4.5 || summary.Balance != -4.5 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	resp = doJSON(t, engine, http.MethodDelete, "/api/expenses/"+created.ID, login.Token, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodDelete, "/api/expenses/"+created.ID, login.Token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("repeated delete: expected 404, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", login.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list after delete: expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected empty JSON array after delete, got %q", got)
	}
}

func TestRouterRecordsAreOwnerScoped(t *testing.T) {
	engine := newTestRouter(t, &config.Config{})

	tokens := make(map[string]string, 2)
	for _, username := range []string{"alice", "bob"} {
		resp := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.AuthRequest{Username: username, Password: "pass123"})
		if resp.Code != http.StatusCreated {
			t.Fatalf("register %s: expected 201, got %d", username, resp.Code)
		}
		resp = doJSON(t, engine, http.MethodPost, "/api/login", "", dto.AuthRequest{Username: username, Password: "pass123"})
		if resp.Code != http.StatusOK {
			t.Fatalf("login %s: expected 200, got %d", username, resp.Code)
		}
		var login dto.TokenResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil {
			t.Fatalf("unmarshal login response: %v", err)
		}
		tokens[username] = login.Token
	}

	amount := 12.0
	resp := doJSON(t, engine, http.MethodPost, "/api/expenses", tokens["alice"], dto.TransactionRequest{Description: "Lunch", Amount: &amount, Type: "expense"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.Code)
	}
	var created dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", tokens["bob"], nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected bob to see no records, got %q", got)
	}

	resp = doJSON(t, engine, http.MethodDelete, "/api/expenses/"+created.ID, tokens["bob"], nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/expenses", tokens["alice"], nil)
	var records []dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal list response: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected alice's record to survive, got %+v", records)
	}
}

func TestRouterHealth(t *testing.T) {
	engine := newTestRouter(t, &config.Config{})

	resp := doJSON(t, engine, http.MethodGet, "/api/health", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRouterUnknownAPIRoute(t *testing.T) {
	engine := newTestRouter(t, &config.Config{StaticDir: t.TempDir()})

	resp := doJSON(t, engine, http.MethodGet, "/api/unknown", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRouterStaticFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>ledger</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ledger')"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	engine := newTestRouter(t, &config.Config{StaticDir: dir})

	resp := doJSON(t, engine, http.MethodGet, "/app.js", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("asset: expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "console.log('ledger')" {
		t.Fatalf("unexpected asset body %q", resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/some/client/route", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("fallback: expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "<html>ledger</html>" {
		t.Fatalf("expected index fallback, got %q", resp.Body.String())
	}
}

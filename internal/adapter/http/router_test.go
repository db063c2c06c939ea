package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/adapter/http/handler"
	apimiddleware "github.com/studiofin/studiofin/internal/adapter/http/middleware"
	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/infrastructure/auth"
	"github.com/studiofin/studiofin/internal/usecase"
	"github.com/studiofin/studiofin/internal/usecase/mocks"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"client_id":"client-1","description":"logo pass","amount":"1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/jobs/",
		"GET /api/v1/jobs/",
		"POST /api/v1/invoices/",
		"GET /api/v1/invoices/{id}",
		"POST /api/v1/invoices/{id}/settle",
		"POST /api/v1/invoices/{id}/preview",
		"GET /api/v1/transactions/",
		"POST /api/v1/transactions/expenses",
		"POST /api/v1/adjustments/bonus",
		"GET /api/v1/admin/settings",
		"GET /api/v1/dashboard",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_AuthGateRejectsMissingToken(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = newTestJWTManager()
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestNewRouter_AdminGateRejectsMemberRole(t *testing.T) {
	jwtManager := newTestJWTManager()
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
	}))

	token, err := jwtManager.Generate(&domain.User{ID: "u-1", Email: "m@studio.dev", Role: domain.RoleMember})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	body := `{"participant_id":"p-1","amount":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/adjustments/bonus", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member role, got %d", rec.Code)
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	txManager := mocks.NewMockTxManager()
	idGen := mocks.NewMockIDGenerator()
	retrier := passRetrier{}

	settingsRepo := mocks.NewMockSettingsRepository(&domain.Settings{
		TaxRate:              decimal.NewFromInt(6),
		FundContributionRate: decimal.NewFromInt(10),
		FundLimit:            decimal.NewFromInt(500000),
	})
	fundRepo := mocks.NewMockFundRepository(&domain.Fund{CurrentBalance: decimal.NewFromInt(100000)})
	participantRepo := mocks.NewMockParticipantRepository()
	balanceRepo := mocks.NewMockBalanceRepository()
	jobRepo := mocks.NewMockJobRepository()
	invoiceRepo := mocks.NewMockInvoiceRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	clientRepo := mocks.NewMockClientRepository()
	categoryRepo := mocks.NewMockCategoryRepositoryWithSystem()
	workTypeRepo := mocks.NewMockWorkTypeRepository()
	cache := mocks.NewMockCache()

	jobUC := usecase.NewJobUseCase(jobRepo, idGen)
	invoiceUC := usecase.NewInvoiceUseCase(txManager, invoiceRepo, jobRepo, idGen)
	settlementUC := usecase.NewSettlementUseCase(
		txManager, invoiceRepo, jobRepo, settingsRepo, fundRepo,
		participantRepo, balanceRepo, transactionRepo, clientRepo,
		categoryRepo, idGen, retrier,
	)
	cashflowUC := usecase.NewCashflowUseCase(txManager, transactionRepo, fundRepo, balanceRepo, participantRepo, idGen)
	adjustmentUC := usecase.NewAdjustmentUseCase(txManager, fundRepo, balanceRepo, participantRepo, settingsRepo)
	adminUC := usecase.NewAdminUseCase(settingsRepo, fundRepo, participantRepo, balanceRepo)
	referenceUC := usecase.NewReferenceUseCase(clientRepo, categoryRepo, workTypeRepo, idGen)
	dashboardUC := usecase.NewDashboardUseCase(transactionRepo, invoiceRepo, fundRepo, settingsRepo, balanceRepo, cache)

	cfg := RouterConfig{
		JobHandler:       handler.NewJobHandler(jobUC),
		InvoiceHandler:   handler.NewInvoiceHandler(invoiceUC, settlementUC, dashboardUC, nil),
		CashflowHandler:  handler.NewCashflowHandler(cashflowUC, dashboardUC, nil),
		AdminHandler:     handler.NewAdminHandler(adminUC, adjustmentUC, dashboardUC),
		ReferenceHandler: handler.NewReferenceHandler(referenceUC),
		DashboardHandler: handler.NewDashboardHandler(dashboardUC),
		HealthHandler:    &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type passRetrier struct{}

func (passRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quotable/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotable/internal/app"
	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/mocks"
	"github.com/jsamuelsen/quotable/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// setupQuoteRouter builds a router with the quote routes backed by
// constant-time mocks, so benchmarks measure handler overhead only.
func setupQuoteRouter() *gin.Engine {
	authors := &mocks.AuthorRepository{}
	authors.On("GetByName", mock.Anything, "Tim", "Peters").
		Return(&domain.Author{ID: 1, First: "Tim", Last: "Peters"}, nil)

	quotes := &mocks.QuoteRepository{}
	quotes.On("List", mock.Anything, 0, 5).Return([]domain.Quote{
		{ID: 1, Content: "Simple is better than complex.", AuthorID: 1},
		{ID: 2, Content: "Readability counts.", AuthorID: 1},
	}, nil)
	quotes.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Quote{ID: 1, Content: "Simple is better than complex.", AuthorID: 1}, nil)

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Authors: authors,
		Quotes:  quotes,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	handlers.NewQuoteHandler(service).RegisterQuoteRoutes(&router.RouterGroup)

	return router
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler measures readiness with registered health checks.
func BenchmarkReadinessHandler(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(&simpleHealthChecker{name: "postgres"})

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	handler := handlers.NewHealthHandler(registry, buildInfo)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkListQuotes measures the list endpoint including binding,
// validation, and response shaping.
func BenchmarkListQuotes(b *testing.B) {
	router := setupQuoteRouter()
	req := httptest.NewRequest(http.MethodGet, "/quotes/", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkCreateQuote measures quote creation including name
// normalization and author resolution.
func BenchmarkCreateQuote(b *testing.B) {
	router := setupQuoteRouter()
	body := `{"content": "Simple is better than complex.", "author": "Tim Peters"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/quotes/", strings.NewReader(body))
		router.ServeHTTP(w, req)
	}
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		expectedAllow string
		expectedCode  int
	}{
		{
			name:          "Origem permitida recebe cabeçalhos",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://localhost:3000",
			method:        http.MethodGet,
			expectedAllow: "http://localhost:3000",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Origem não permitida não recebe cabeçalhos",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://evil.example",
			method:        http.MethodGet,
			expectedAllow: "",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Curinga libera qualquer origem",
			allowed:       []string{"*"},
			origin:        "http://painel.example",
			method:        http.MethodGet,
			expectedAllow: "http://painel.example",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Preflight responde sem chamar o handler",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://localhost:3000",
			method:        http.MethodOptions,
			expectedAllow: "http://localhost:3000",
			expectedCode:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/dashboard/urgent/kpis", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}

func TestNoStore(t *testing.T) {
	rec := httptest.NewRecorder()
	NoStore()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
}

func TestLoggingMiddleware_ExposesCorrelationHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	LoggingMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	auth := r.Group("/", AuthMiddleware(&config.Config{JWTSecret: secret}))
	auth.GET("/me", func(c *gin.Context) {
		caller, _ := Caller(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.ID, "role": caller.Role, "name": caller.Name})
	})
	auth.GET("/doctor-only", RequireRole(identity.RoleDoctor), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	exp := time.Now().Add(time.Hour).Unix()

	rec := do(r, "/me", sign(t, jwt.MapClaims{"sub": float64(7), "role": "doctor", "name": "House", "exp": exp}, secret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"role":"doctor","name":"House"}`, rec.Body.String())

	rec = do(r, "/me", sign(t, jwt.MapClaims{"sub": "8", "role": "Patient", "exp": exp}, secret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":8,"role":"patient","name":""}`, rec.Body.String())

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"missing header", "", "missing_authorization_header"},
		{"bad signature", sign(t, jwt.MapClaims{"sub": float64(7), "role": "doctor"}, "other"), "invalid_token"},
		{"expired", sign(t, jwt.MapClaims{"sub": float64(7), "role": "doctor", "exp": time.Now().Add(-time.Hour).Unix()}, secret), "invalid_token"},
		{"no role", sign(t, jwt.MapClaims{"sub": float64(7)}, secret), "invalid_token_payload"},
		{"unknown role", sign(t, jwt.MapClaims{"sub": float64(7), "role": "nurse"}, secret), "invalid_token_payload"},
		{"zero sub", sign(t, jwt.MapClaims{"sub": float64(0), "role": "doctor"}, secret), "invalid_token_payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, "/me", tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "invalid_authorization_header")
}

func TestRequireRole(t *testing.T) {
	r := newRouter()

	rec := do(r, "/doctor-only", sign(t, jwt.MapClaims{"sub": float64(7), "role": "doctor"}, secret))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, "/doctor-only", sign(t, jwt.MapClaims{"sub": float64(8), "role": "patient"}, secret))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden_role")
}

func TestRequestIDAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), AccessLog(&logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := do(r, "/ping", "")
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, buf.String(), generated)
	assert.Contains(t, buf.String(), `"status":200`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewCollector("test", prometheus.NewRegistry())

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, "/items/1", "")
	do(r, "/items/2", "")
	do(r, "/nowhere", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://clinic.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://clinic.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

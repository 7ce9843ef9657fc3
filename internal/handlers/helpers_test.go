package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, want := range map[string]int{
		"/items/7":   http.StatusOK,
		"/items/0":   http.StatusBadRequest,
		"/items/-1":  http.StatusBadRequest,
		"/items/abc": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestCallerOrAbort(t *testing.T) {
	handler := func(c *gin.Context) {
		caller, ok := callerOrAbort(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": caller.ID})
	}

	r := gin.New()
	r.GET("/anonymous", handler)
	r.GET("/known", func(c *gin.Context) {
		c.Set(middleware.ContextCaller, identity.CallerContext{ID: 4, Role: identity.RolePatient})
	}, handler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/known", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":4}`, rec.Body.String())
}

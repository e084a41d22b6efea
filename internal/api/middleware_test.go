package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arcadia-data/appraise/internal/store"
)

func TestAdminAuthMiddleware(t *testing.T) {
	mockStore := &MockStore{}
	mockStore.On("GetStats", mock.Anything).Return(&store.CatalogStats{TotalDatasets: 3}, nil)

	r := chi.NewRouter()
	admin := &AdminHandler{store: mockStore}
	r.Group(func(r chi.Router) {
		r.Use(AdminAuthMiddleware("test-admin-token"))
		r.Get("/api/v1/admin/stats", admin.Stats)
	})

	// no token
	req, _ := http.NewRequest("GET", "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// wrong token
	req, _ = http.NewRequest("GET", "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// correct token
	req, _ = http.NewRequest("GET", "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer test-admin-token")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	mockStore.AssertExpectations(t)
}

func TestHealthEndpoint(t *testing.T) {
	r := NewMetricsRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"job-marketplace-api/internal/api/handlers"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCategoryHandlerTest() (*gin.Engine, *MockCategoryService) {
	router := newTestRouter()
	svc := new(MockCategoryService)
	h := handlers.NewCategoryHandler(svc)

	router.GET("/categories", h.ListCategories)
	router.POST("/categories", authMW(), h.CreateCategory)
	router.PUT("/categories/:id", authMW(), h.UpdateCategory)
	router.DELETE("/categories/:id", authMW(), h.DeleteCategory)
	return router, svc
}

func TestCategoryHandler_ListIsPublic(t *testing.T) {
	router, svc := setupCategoryHandlerTest()
	svc.On("List", mock.Anything).Return([]models.Category{{ID: uuid.New(), Name: "Cleaning"}}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cleaning")
}

func TestCategoryHandler_Create(t *testing.T) {
	router, svc := setupCategoryHandlerTest()
	svc.On("Create", mock.Anything, &dto.CreateCategoryRequest{Name: "Cleaning"}).
		Return(nil, fmt.Errorf("%w: creating category", services.ErrConflict)).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Cleaning"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Cleaning"}`))
	bearer(t, req, uuid.New(), models.RoleWorker)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoryHandler_UpdateAndDelete(t *testing.T) {
	router, svc := setupCategoryHandlerTest()
	id := uuid.New()
	svc.On("Update", mock.Anything, &dto.UpdateCategoryRequest{ID: id, Name: "Gardening"}).
		Return(&models.Category{ID: id, Name: "Gardening"}, nil).Once()
	svc.On("Delete", mock.Anything, id).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/categories/"+id.String(), strings.NewReader(`{"name":"Gardening"}`))
	bearer(t, req, uuid.New(), models.RoleEmployer)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/categories/"+id.String(), nil)
	bearer(t, req, uuid.New(), models.RoleEmployer)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	svc.AssertExpectations(t)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		db, cache  handlers.Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "AllUp", db: stubPinger{}, cache: stubPinger{}, wantStatus: http.StatusOK, wantBody: `"cache":"up"`},
		{name: "CacheDown", db: stubPinger{}, cache: stubPinger{err: errors.New("refused")}, wantStatus: http.StatusOK, wantBody: `"cache":"down"`},
		{name: "DatabaseDown", db: stubPinger{err: errors.New("refused")}, cache: stubPinger{}, wantStatus: http.StatusServiceUnavailable, wantBody: `"database":"down"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			router.GET("/health", handlers.NewHealthHandler(tt.db, tt.cache).HealthCheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/internal/app/service"
	"github.com/hraza/pakretail-datagen/internal/errors"
)

type stubGenerationService struct {
	summary *service.RunSummary
	err     error
	latest  *service.RunSummary
	dataset *generator.Dataset
}

func (s *stubGenerationService) Run() (*service.RunSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func (s *stubGenerationService) Latest() (*service.RunSummary, bool) {
	if s.latest == nil {
		return nil, false
	}
	return s.latest, true
}

func (s *stubGenerationService) Dataset() (*generator.Dataset, bool) {
	if s.dataset == nil {
		return nil, false
	}
	return s.dataset, true
}

func setupRunRouter(svc service.GenerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewRunController(svc)
	router.POST("/api/v1/runs", ctrl.CreateRun)
	router.GET("/api/v1/runs/latest", ctrl.LatestRun)
	return router
}

func TestCreateRun_Success(t *testing.T) {
	svc := &stubGenerationService{
		summary: &service.RunSummary{
			RunID:     "run-1",
			Seed:      42,
			Customers: 10,
			Orders:    25,
		},
	}
	router := setupRunRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/runs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got service.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, 25, got.Orders)
}

func TestCreateRun_InvalidCount(t *testing.T) {
	svc := &stubGenerationService{err: generator.ErrInvalidCount}
	router := setupRunRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/runs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.ConfigInvalidCount, resp.Error)
}

func TestCreateRun_NoStaffedStores(t *testing.T) {
	svc := &stubGenerationService{err: generator.ErrNoStaffedStores}
	router := setupRunRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/runs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.GenerateNoStaffedStores, resp.Error)
}

func TestLatestRun_NotFound(t *testing.T) {
	router := setupRunRouter(&stubGenerationService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/runs/latest", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.RunNotFound, resp.Error)
}

func TestLatestRun_Success(t *testing.T) {
	svc := &stubGenerationService{
		latest: &service.RunSummary{RunID: "run-7", Orders: 100},
	}
	router := setupRunRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/runs/latest", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got service.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "run-7", got.RunID)
	assert.Equal(t, 100, got.Orders)
}

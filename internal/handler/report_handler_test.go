package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"aipulse/internal/pipeline"
)

type fakeRunner struct {
	result *pipeline.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context) (*pipeline.Result, error) {
	return f.result, f.err
}

func newTestRouter(runner ReportRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReportHandler(runner)
	r.POST("/reports/run", h.RunReport)
	r.GET("/health", h.GetHealth)
	return r
}

func TestRunReportSuccess(t *testing.T) {
	completedAt := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)
	runner := &fakeRunner{result: &pipeline.Result{DocumentID: "doc123", CompletedAt: completedAt}}

	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/run", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RunResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.Success)
	assert.Equal(t, "doc123", res.DocumentID)
	assert.Equal(t, "Отчёт успешно создан и опубликован", res.Message)
	assert.Equal(t, "2026-03-07T09:05:00Z", res.Timestamp)
}

func TestRunReportFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("collect findings: perplexity: unexpected status 429")}

	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/run", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res RunErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, false, res.Success)
	assert.Equal(t, "collect findings: perplexity: unexpected status 429", res.Error)
	assert.NotEqual(t, "", res.Timestamp)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeRunner{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

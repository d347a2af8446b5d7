package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aipulse/internal/pipeline"
)

// ReportRunner executes one full report run.
type ReportRunner interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

type ReportHandler struct {
	runner ReportRunner
}

func NewReportHandler(runner ReportRunner) *ReportHandler {
	return &ReportHandler{runner: runner}
}

const successMessage = "Отчёт успешно создан и опубликован"

type RunResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
	Timestamp  string `json:"timestamp"`
}

type RunErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func (h *ReportHandler) RunReport(c *gin.Context) {
	result, err := h.runner.Run(c.Request.Context())
	if err != nil {
		slog.Error("report run failed", "error", err)
		c.JSON(http.StatusInternalServerError, RunErrorResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, RunResponse{
		Success:    true,
		Message:    successMessage,
		DocumentID: result.DocumentID,
		Timestamp:  result.CompletedAt.UTC().Format(time.RFC3339),
	})
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

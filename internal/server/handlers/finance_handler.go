package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/service/finance"
)

// FinanceHandler exposes the ledger endpoints.
type FinanceHandler struct {
	svc    finance.Ledger
	logger *zap.Logger
}

// NewFinanceHandler constructs the HTTP handler adapter.
func NewFinanceHandler(svc finance.Ledger, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{svc: svc, logger: logger}
}

// Record appends one income or expense record.
func (h *FinanceHandler) Record(c *gin.Context) {
	var req models.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid finance payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "failed to record finance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recordId": record.ID})
}

// Summary returns a farmer's records with the derived summary.
func (h *FinanceHandler) Summary(c *gin.Context) {
	view, err := h.svc.GetSummary(c.Request.Context(), c.Param("farmerId"))
	if err != nil {
		respondError(c, h.logger, err, "failed to fetch finance data")
		return
	}

	c.JSON(http.StatusOK, view)
}

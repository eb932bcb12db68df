package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/service/profit"
)

// ProfitHandler exposes the income-doubling projector endpoints.
type ProfitHandler struct {
	svc    profit.Projector
	logger *zap.Logger
}

// NewProfitHandler constructs the HTTP handler adapter.
func NewProfitHandler(svc profit.Projector, logger *zap.Logger) *ProfitHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfitHandler{svc: svc, logger: logger}
}

// Calculate computes the profit-path projection.
func (h *ProfitHandler) Calculate(c *gin.Context) {
	var req models.ProfitPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profit-path payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	projection, err := h.svc.CalculateProfitPath(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "profit calculation failed")
		return
	}

	c.JSON(http.StatusOK, projection)
}

// History lists recent projections, newest first.
func (h *ProfitHandler) History(c *gin.Context) {
	history, err := h.svc.IncomeHistory(c.Request.Context(), c.Param("farmerId"))
	if err != nil {
		respondError(c, h.logger, err, "failed to fetch history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

package handler

import (
	"net/http"

	"rug-radar/internal/domain"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	ContractAddress string `json:"contract_address" binding:"required"`
}

// AnalyzeToken godoc
// @Summary      Run a rug pull risk analysis for a Solana token
// @Description  Fetches holder and market data, scores five risk factors and returns the aggregate assessment
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analyzeRequest  true  "Token to analyze"
// @Success      200      {object}  domain.AnalysisResult
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/analyze [post]
func (h *Handler) AnalyzeToken(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract_address is required"})
		return
	}
	if !domain.ValidMintAddress(req.ContractAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mint address"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-token")
	defer span.End()

	result, err := h.analysisService.AnalyzeToken(ctx, req.ContractAddress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DemoAnalysis godoc
// @Summary      Sample risk analysis over a fixed reference snapshot
// @Description  Returns a deterministic analysis so clients can inspect the response shape without hitting providers
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  domain.AnalysisResult
// @Router       /api/analyze/demo [get]
func (h *Handler) DemoAnalysis(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.demo-analysis")
	defer span.End()

	c.JSON(http.StatusOK, h.analysisService.DemoAnalysis(ctx))
}

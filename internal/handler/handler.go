package handler

import (
	"rug-radar/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer          trace.Tracer
	analysisService *service.AnalysisService
}

func New(tracer trace.Tracer, analysisService *service.AnalysisService) *Handler {
	return &Handler{
		tracer:          tracer,
		analysisService: analysisService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/api/analyze", h.AnalyzeToken)
	r.GET("/api/analyze/demo", h.DemoAnalysis)
}

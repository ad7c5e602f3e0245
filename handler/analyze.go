package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/josedguti/contract-guard-ai-app/analysis"
	"github.com/josedguti/contract-guard-ai-app/middleware"
	"github.com/josedguti/contract-guard-ai-app/model"
	"github.com/josedguti/contract-guard-ai-app/pkg/logger"
	"github.com/josedguti/contract-guard-ai-app/pkg/textnorm"
	"github.com/josedguti/contract-guard-ai-app/ruleset"
	"github.com/josedguti/contract-guard-ai-app/service"
)

// minTextLength is the smallest input accepted for analysis.
const minTextLength = 50

type AnalyzeHandler struct {
	aiService     *service.AIService
	reportService *service.ReportService // nil when the archive is disabled
	store         *service.AnalysisStore
	rules         *ruleset.Set
}

func NewAnalyzeHandler(aiSvc *service.AIService, reportSvc *service.ReportService, rules *ruleset.Set) *AnalyzeHandler {
	return &AnalyzeHandler{
		aiService:     aiSvc,
		reportService: reportSvc,
		store:         service.GetAnalysisStore(),
		rules:         rules,
	}
}

type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Analyze runs the full pipeline on extracted contract text: normalize,
// rules pass, one AI round trip, merge, store. An AI failure never
// invalidates the rules-derived result; it is reported in ai_error.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: text is required"})
		return
	}

	if len(req.Text) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text too short for analysis"})
		return
	}

	analysisID := uuid.New().String()
	ctx := context.WithValue(c.Request.Context(), logger.AnalysisIDKey, analysisID)

	cleaned := textnorm.Clean(req.Text)
	engine := analysis.New(cleaned, h.rules)
	result := engine.Analyze()

	record := &model.Analysis{
		ID:        analysisID,
		Tenant:    tenant,
		Status:    model.StatusPending,
		Result:    &result,
		CreatedAt: time.Now(),
	}
	h.store.Save(record)

	logger.Info(ctx, "rules pass completed",
		"risk_score", result.RiskScore.Overall,
		"risk_level", result.RiskScore.RiskLevel,
		"clauses", len(result.DetectedClauses),
		"missing_terms", len(result.MissingTerms),
		"obligations", len(result.Obligations),
	)

	// One round trip to the AI collaborator; its absence never blocks the
	// rules result.
	if h.aiService.Enabled() {
		insights, err := h.aiService.GenerateInsights(ctx, cleaned, &result)
		if err != nil {
			record.AIError = aiErrorMessage(err)
			logger.Warn(ctx, "AI insights unavailable", "error", err)
		} else {
			result.AIInsights = insights
		}
	}

	if h.reportService != nil {
		objectName, err := h.reportService.StoreReport(ctx, tenant, analysisID, &result)
		if err != nil {
			logger.Warn(ctx, "failed to archive report", "error", err)
		} else if url, err := h.reportService.PresignedReportURL(ctx, objectName); err != nil {
			logger.Warn(ctx, "failed to generate report URL", "error", err)
		} else {
			record.ReportURL = url
		}
	}

	record.Status = model.StatusCompleted
	record.Result = &result
	h.store.Save(record)

	c.JSON(http.StatusOK, record)
}

// aiErrorMessage maps AI collaborator failures to user-facing, retryable
// condition descriptions.
func aiErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrAINotConfigured):
		return "AI service not configured"
	case errors.Is(err, service.ErrAIRateLimited):
		return "AI service rate limit exceeded. Please try again later."
	default:
		return "AI analysis failed. Please try again."
	}
}

// List returns all analyses for the current tenant, without full results
func (h *AnalyzeHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(analyses))
	for i, a := range analyses {
		entry := gin.H{
			"id":         a.ID,
			"status":     a.Status,
			"created_at": a.CreatedAt.Format(time.RFC3339),
			"updated_at": a.UpdatedAt.Format(time.RFC3339),
		}
		if a.Result != nil {
			entry["risk_score"] = a.Result.RiskScore.Overall
			entry["risk_level"] = a.Result.RiskScore.RiskLevel
			entry["detected_type"] = a.Result.Metadata.DetectedType
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns a single analysis with its full result
func (h *AnalyzeHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	a := h.store.Get(id)
	if a == nil || a.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// Delete removes an analysis and its archived report
func (h *AnalyzeHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	a := h.store.Get(id)
	if a == nil || a.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	if h.reportService != nil && a.ReportURL != "" {
		objectName := tenant + "/" + id + "/report.json"
		if err := h.reportService.DeleteReport(c.Request.Context(), objectName); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete archived report", "error", err)
		}
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}

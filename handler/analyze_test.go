package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/josedguti/contract-guard-ai-app/config"
	"github.com/josedguti/contract-guard-ai-app/model"
	"github.com/josedguti/contract-guard-ai-app/ruleset"
	"github.com/josedguti/contract-guard-ai-app/service"
)

const sampleContract = `This subscription agreement is made between the parties. ` +
	`The vendor accepts unlimited liability for all damages arising hereunder. ` +
	`The client shall pay the subscription fees within 30 days of invoice. ` +
	`This agreement will automatically renew for successive one year terms.`

func newAnalyzeTestService(apiKey, baseURL string) *service.AIService {
	return service.NewAIService(&config.OpenAIConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		Model:          "gpt-5-mini",
		TimeoutSeconds: 5,
	})
}

func setupAnalyzeRouter(aiSvc *service.AIService, tenant string) *gin.Engine {
	h := NewAnalyzeHandler(aiSvc, nil, ruleset.Default())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant", tenant)
		c.Next()
	})
	router.POST("/api/analyze", h.Analyze)
	router.GET("/api/analyses", h.List)
	router.GET("/api/analyses/:id", h.Get)
	router.DELETE("/api/analyses/:id", h.Delete)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, text string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeTextTooShort(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-short")

	w := postAnalyze(t, router, "too short")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["error"] != "Text too short for analysis" {
		t.Errorf("Unexpected error message: %q", resp["error"])
	}
}

func TestAnalyzeMissingText(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-missing")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestAnalyzeWithoutAI(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-noai")

	w := postAnalyze(t, router, sampleContract)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var record model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if record.ID == "" {
		t.Error("Expected an analysis ID")
	}
	if record.Status != model.StatusCompleted {
		t.Errorf("Expected completed status, got %s", record.Status)
	}
	if record.AIError != "" {
		t.Errorf("Expected no AI error when AI is disabled, got %q", record.AIError)
	}
	if record.Result == nil {
		t.Fatal("Expected a rules result")
	}
	if record.Result.RiskScore.Overall == 0 {
		t.Error("Expected non-zero risk score for risky sample")
	}
	if record.Result.AIInsights != nil {
		t.Error("Expected no AI insights when AI is disabled")
	}
}

func TestAnalyzeWithAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"role":    "assistant",
					"content": "1. Summary\nA risky subscription agreement.\n\n2. Key Findings\n- Unlimited liability",
				}},
			},
		})
	}))
	defer server.Close()

	router := setupAnalyzeRouter(newAnalyzeTestService("sk-test", server.URL), "tenant-ai")

	w := postAnalyze(t, router, sampleContract)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var record model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if record.AIError != "" {
		t.Errorf("Expected no AI error, got %q", record.AIError)
	}
	if record.Result == nil || record.Result.AIInsights == nil {
		t.Fatal("Expected AI insights in result")
	}
	if record.Result.AIInsights.Summary != "A risky subscription agreement." {
		t.Errorf("Unexpected summary: %q", record.Result.AIInsights.Summary)
	}
}

func TestAnalyzeAIFailureKeepsRulesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	router := setupAnalyzeRouter(newAnalyzeTestService("sk-test", server.URL), "tenant-ailimit")

	w := postAnalyze(t, router, sampleContract)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 despite AI failure, got %d", w.Code)
	}

	var record model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if record.AIError != "AI service rate limit exceeded. Please try again later." {
		t.Errorf("Unexpected AI error: %q", record.AIError)
	}
	if record.Status != model.StatusCompleted {
		t.Errorf("Expected completed status, got %s", record.Status)
	}
	if record.Result == nil || len(record.Result.DetectedClauses) == 0 {
		t.Error("Expected rules result to survive the AI failure")
	}
	if record.Result != nil && record.Result.AIInsights != nil {
		t.Error("Expected no AI insights on failure")
	}
}

func TestGetAnalysis(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-get")

	w := postAnalyze(t, router, sampleContract)
	var created model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var fetched model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("Expected ID %s, got %s", created.ID, fetched.ID)
	}

	// Unknown ID
	req = httptest.NewRequest(http.MethodGet, "/api/analyses/non-existent", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestGetAnalysisTenantIsolation(t *testing.T) {
	owner := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-owner")
	other := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-other")

	w := postAnalyze(t, owner, sampleContract)
	var created model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)
	w = httptest.NewRecorder()
	other.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for foreign tenant, got %d", w.Code)
	}
}

func TestListAnalyses(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-list")

	postAnalyze(t, router, sampleContract)
	postAnalyze(t, router, sampleContract)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Analyses []map[string]interface{} `json:"analyses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Analyses) != 2 {
		t.Fatalf("Expected 2 analyses, got %d", len(resp.Analyses))
	}
	entry := resp.Analyses[0]
	if entry["id"] == "" {
		t.Error("Expected id in list entry")
	}
	if _, ok := entry["risk_score"]; !ok {
		t.Error("Expected risk_score in list entry")
	}
	if _, ok := entry["result"]; ok {
		t.Error("Expected list entries to omit the full result")
	}
}

func TestDeleteAnalysis(t *testing.T) {
	router := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-delete")

	w := postAnalyze(t, router, sampleContract)
	var created model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/analyses/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}

	// Delete from the wrong tenant is a 404
	other := setupAnalyzeRouter(newAnalyzeTestService("", ""), "tenant-delete-other")
	w2 := postAnalyze(t, router, sampleContract)
	var again model.Analysis
	if err := json.Unmarshal(w2.Body.Bytes(), &again); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	req = httptest.NewRequest(http.MethodDelete, "/api/analyses/"+again.ID, nil)
	w = httptest.NewRecorder()
	other.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for foreign tenant delete, got %d", w.Code)
	}
}

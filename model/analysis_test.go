package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if !s.Valid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	if Severity("extreme").Valid() {
		t.Error("Expected 'extreme' to be invalid")
	}
	if Severity("").Valid() {
		t.Error("Expected empty severity to be invalid")
	}
}

func TestRuleCategoryValid(t *testing.T) {
	for _, c := range []RuleCategory{CategoryRisk, CategoryMissing, CategoryObligation} {
		if !c.Valid() {
			t.Errorf("Expected %q to be valid", c)
		}
	}
	if RuleCategory("warning").Valid() {
		t.Error("Expected 'warning' to be invalid")
	}
}

func TestAnalysisStatusConstants(t *testing.T) {
	statuses := []string{StatusPending, StatusCompleted, StatusFailed}
	expected := []string{"pending", "completed", "failed"}

	for i, status := range statuses {
		if status != expected[i] {
			t.Errorf("Expected '%s', got '%s'", expected[i], status)
		}
	}
}

func TestAnalysisResultJSON(t *testing.T) {
	deadline := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	result := AnalysisResult{
		Metadata: ContractMetadata{
			DetectedType: "saas",
			Confidence:   85.5,
			WordCount:    1200,
			QualityScore: 92,
		},
		RiskScore: RiskScore{
			Overall:   55,
			RiskLevel: RiskHigh,
		},
		Obligations: []Obligation{
			{ID: "obligation-1", Type: ObligationPayment, Party: "unknown", Deadline: &deadline},
		},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}

	var decoded AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}

	if decoded.Metadata.DetectedType != "saas" {
		t.Errorf("Expected detected type saas, got %s", decoded.Metadata.DetectedType)
	}
	if decoded.RiskScore.RiskLevel != RiskHigh {
		t.Errorf("Expected risk level high, got %s", decoded.RiskScore.RiskLevel)
	}
	if decoded.AIInsights != nil {
		t.Error("Expected nil AI insights to stay nil")
	}
	if decoded.Obligations[0].Deadline == nil || !decoded.Obligations[0].Deadline.Equal(deadline) {
		t.Error("Expected obligation deadline to round-trip")
	}
}

package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/josedguti/contract-guard-ai-app/model"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	result := &model.AnalysisResult{
		RiskScore: model.RiskScore{
			Overall:   55,
			RiskLevel: model.RiskHigh,
			Breakdown: model.RiskBreakdown{CriticalIssues: 1, MissingTerms: 2},
		},
		DetectedClauses: []model.DetectedClause{
			{Rule: model.Rule{Name: "Unlimited Liability", Description: "No liability cap"}, Severity: model.SeverityCritical},
		},
		MissingTerms: []model.MissingTerm{
			{Name: "Data Protection", Importance: model.SeverityCritical, Description: "Missing Data Protection section"},
		},
		Obligations: []model.Obligation{
			{Type: model.ObligationPayment, Description: "pay the subscription fees"},
		},
	}

	prompt := BuildAnalysisPrompt("This is the contract text.", result)

	for _, want := range []string{
		"Overall Risk Score: 55/100 (high risk)",
		"Critical Issues: 1",
		"Unlimited Liability (critical): No liability cap",
		"Data Protection (critical): Missing Data Protection section",
		"payment: pay the subscription fees",
		"This is the contract text.",
		"1. **Summary**",
		"2. **Key Findings**",
		"3. **Recommendations**",
		"4. **Critical Warnings**",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
}

func TestBuildAnalysisPromptTruncation(t *testing.T) {
	long := strings.Repeat("a", maxPromptTextLength+500)

	prompt := BuildAnalysisPrompt(long, nil)
	if !strings.Contains(prompt, promptTruncationMarker) {
		t.Error("Expected truncation marker for long text")
	}
	if strings.Contains(prompt, strings.Repeat("a", maxPromptTextLength+1)) {
		t.Error("Expected text cut at the limit")
	}

	short := BuildAnalysisPrompt("brief text", nil)
	if strings.Contains(short, promptTruncationMarker) {
		t.Error("Expected no truncation marker for short text")
	}
}

func TestBuildAnalysisPromptSummaryLimit(t *testing.T) {
	var clauses []model.DetectedClause
	for i := 0; i < promptSummaryLimit+3; i++ {
		clauses = append(clauses, model.DetectedClause{
			Rule:     model.Rule{Name: fmt.Sprintf("Rule %d", i)},
			Severity: model.SeverityLow,
		})
	}
	result := &model.AnalysisResult{DetectedClauses: clauses}

	prompt := BuildAnalysisPrompt("text", result)

	if !strings.Contains(prompt, "Rule 4") {
		t.Error("Expected the fifth clause to be listed")
	}
	if strings.Contains(prompt, "Rule 5") {
		t.Error("Expected clauses beyond the limit to be omitted")
	}
}

func TestBuildAnalysisPromptNilResult(t *testing.T) {
	prompt := BuildAnalysisPrompt("some text", nil)

	if strings.Contains(prompt, "Automated Risk Assessment") {
		t.Error("Expected no risk section without a rules result")
	}
	if !strings.Contains(prompt, "some text") {
		t.Error("Expected contract text in prompt")
	}
}

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt()
	if !strings.Contains(prompt, "legal analyst") {
		t.Error("Expected legal analyst role in system prompt")
	}
}

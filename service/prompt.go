package service

import (
	"fmt"
	"strings"

	"github.com/josedguti/contract-guard-ai-app/model"
)

// maxPromptTextLength caps how much contract text goes into the prompt.
const maxPromptTextLength = 6000

// promptTruncationMarker is appended when the contract text was cut.
const promptTruncationMarker = "\n\n[...text truncated for length...]"

// promptSummaryLimit caps how many clauses/terms/obligations the prompt lists.
const promptSummaryLimit = 5

// SystemPrompt returns the fixed instruction framing for the legal analyst role.
func SystemPrompt() string {
	return `You are an expert legal analyst specializing in contract review. Your role is to:
1. Provide plain-English summaries of complex legal language
2. Identify key risks and red flags in contracts
3. Offer practical recommendations for negotiation
4. Explain legal implications in terms non-lawyers can understand

Guidelines:
- Be concise and actionable
- Focus on the most important issues first
- Use clear, simple language
- Provide specific recommendations
- Highlight critical risks prominently
- Be objective and balanced`
}

// BuildAnalysisPrompt assembles the user prompt from the rules-pass result
// and the contract text, requesting exactly four numbered sections.
func BuildAnalysisPrompt(contractText string, result *model.AnalysisResult) string {
	truncated := contractText
	if len(truncated) > maxPromptTextLength {
		truncated = truncated[:maxPromptTextLength] + promptTruncationMarker
	}

	var b strings.Builder
	b.WriteString("Please analyze this contract and provide insights:\n\n")

	if result != nil {
		writeRiskSummary(&b, result.RiskScore)
		writeClauseSummary(&b, result.DetectedClauses)
		writeMissingTermSummary(&b, result.MissingTerms)
		writeObligationSummary(&b, result.Obligations)
	}

	b.WriteString("## Contract Text\n")
	b.WriteString(truncated)
	b.WriteString("\n\n")

	b.WriteString("## Your Analysis\n")
	b.WriteString("Please provide:\n")
	b.WriteString("1. **Summary** (2-3 sentences): What is this contract about?\n")
	b.WriteString("2. **Key Findings** (3-5 bullet points): Most important things to know\n")
	b.WriteString("3. **Recommendations** (3-5 bullet points): Specific actions to take\n")
	b.WriteString("4. **Critical Warnings** (if any): Urgent issues that need immediate attention\n\n")
	b.WriteString("Keep your response concise and actionable. Focus on what matters most.")

	return b.String()
}

func writeRiskSummary(b *strings.Builder, score model.RiskScore) {
	b.WriteString("## Automated Risk Assessment\n")
	fmt.Fprintf(b, "Overall Risk Score: %d/100 (%s risk)\n", score.Overall, score.RiskLevel)
	fmt.Fprintf(b, "- Critical Issues: %d\n", score.Breakdown.CriticalIssues)
	fmt.Fprintf(b, "- High Risk Clauses: %d\n", score.Breakdown.HighRiskClauses)
	fmt.Fprintf(b, "- Medium Risk Clauses: %d\n", score.Breakdown.MediumRiskClauses)
	fmt.Fprintf(b, "- Missing Terms: %d\n\n", score.Breakdown.MissingTerms)
}

func writeClauseSummary(b *strings.Builder, clauses []model.DetectedClause) {
	if len(clauses) == 0 {
		return
	}
	b.WriteString("## Detected Risky Clauses\n")
	for i, clause := range clauses {
		if i >= promptSummaryLimit {
			break
		}
		fmt.Fprintf(b, "- %s (%s): %s\n", clause.Rule.Name, clause.Severity, clause.Rule.Description)
	}
	b.WriteString("\n")
}

func writeMissingTermSummary(b *strings.Builder, terms []model.MissingTerm) {
	if len(terms) == 0 {
		return
	}
	b.WriteString("## Missing Important Terms\n")
	for i, term := range terms {
		if i >= promptSummaryLimit {
			break
		}
		fmt.Fprintf(b, "- %s (%s): %s\n", term.Name, term.Importance, term.Description)
	}
	b.WriteString("\n")
}

func writeObligationSummary(b *strings.Builder, obligations []model.Obligation) {
	if len(obligations) == 0 {
		return
	}
	b.WriteString("## Key Obligations Found\n")
	for i, obligation := range obligations {
		if i >= promptSummaryLimit {
			break
		}
		fmt.Fprintf(b, "- %s: %s\n", obligation.Type, obligation.Description)
	}
	b.WriteString("\n")
}

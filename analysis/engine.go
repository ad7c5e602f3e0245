// Package analysis implements the rule-based contract analysis core:
// contract-type detection, clause detection, missing-term checking,
// obligation extraction and risk scoring.
package analysis

import (
	"strings"
	"time"

	"github.com/josedguti/contract-guard-ai-app/model"
	"github.com/josedguti/contract-guard-ai-app/pkg/textnorm"
	"github.com/josedguti/contract-guard-ai-app/ruleset"
)

// Engine runs the rules pass over one document. It holds only
// per-invocation state (the text and the configuration it was created
// with), so separate analyses can run in parallel without coordination.
type Engine struct {
	text      string
	textLower string
	rules     []model.Rule
	templates []model.ContractTemplate
}

// New creates an engine for one analysis of text against set.
func New(text string, set *ruleset.Set) *Engine {
	return &Engine{
		text:      text,
		textLower: strings.ToLower(text),
		rules:     set.Rules,
		templates: set.Templates,
	}
}

// Analyze runs the complete rules pass and assembles the result.
// AI insights are not part of the rules pass; the caller merges them in
// after the language-model round trip.
func (e *Engine) Analyze() model.AnalysisResult {
	contractType := e.DetectContractType()
	clauses := e.DetectClauses()
	missing := e.CheckMissingTerms(contractType)
	obligations := e.ParseObligations()
	score := CalculateRiskScore(clauses, missing)

	now := time.Now()
	return model.AnalysisResult{
		Metadata: model.ContractMetadata{
			DetectedType: contractType,
			Confidence:   e.TypeConfidence(contractType),
			WordCount:    textnorm.WordCount(e.text),
			QualityScore: textnorm.AssessQuality(e.text),
			ExtractedAt:  now,
		},
		RiskScore:       score,
		DetectedClauses: clauses,
		MissingTerms:    missing,
		Obligations:     obligations,
		AnalyzedAt:      now,
	}
}

// DetectContractType counts how many of each template's identifier keywords
// appear in the text and returns the type with the strictly highest count.
// Ties go to the template configured first; a zero best count means no type.
func (e *Engine) DetectContractType() model.ContractType {
	var detected model.ContractType
	maxMatches := 0

	for _, tpl := range e.templates {
		matches := e.countIdentifiers(tpl)
		if matches > maxMatches {
			maxMatches = matches
			detected = tpl.ContractType
		}
	}

	return detected
}

// TypeConfidence returns matched_identifiers / total_identifiers * 100 for
// the given type, clamped to 100. Zero when the type is absent or unknown.
func (e *Engine) TypeConfidence(contractType model.ContractType) float64 {
	if contractType == "" {
		return 0
	}

	for _, tpl := range e.templates {
		if tpl.ContractType != contractType {
			continue
		}
		if len(tpl.Identifiers) == 0 {
			return 0
		}
		confidence := float64(e.countIdentifiers(tpl)) / float64(len(tpl.Identifiers)) * 100
		if confidence > 100 {
			confidence = 100
		}
		return confidence
	}

	return 0
}

func (e *Engine) countIdentifiers(tpl model.ContractTemplate) int {
	matches := 0
	for _, identifier := range tpl.Identifiers {
		if strings.Contains(e.textLower, strings.ToLower(identifier)) {
			matches++
		}
	}
	return matches
}

// DetectClauses evaluates every rule against the text. A rule's matches are
// deduplicated by character offset (first hit at an offset wins); rules with
// no remaining matches produce no clause.
func (e *Engine) DetectClauses() []model.DetectedClause {
	var clauses []model.DetectedClause

	for _, rule := range e.rules {
		matches := e.matchRule(rule)
		if len(matches) == 0 {
			continue
		}
		clauses = append(clauses, model.DetectedClause{
			ID:       rule.ID,
			Rule:     rule,
			Matches:  matches,
			Severity: rule.Severity,
		})
	}

	return clauses
}

func (e *Engine) matchRule(rule model.Rule) []model.Match {
	var all []model.Match
	for _, pattern := range rule.Patterns {
		all = append(all, matchPattern(e.text, e.textLower, pattern)...)
	}

	seen := make(map[int]bool, len(all))
	unique := all[:0]
	for _, m := range all {
		if seen[m.Position] {
			continue
		}
		seen[m.Position] = true
		unique = append(unique, m)
	}
	return unique
}

// CheckMissingTerms reports every required section of the resolved template
// for which none of the section's keywords appear in the text. An empty or
// unknown contract type yields an empty list.
func (e *Engine) CheckMissingTerms(contractType model.ContractType) []model.MissingTerm {
	if contractType == "" {
		return nil
	}

	var tpl *model.ContractTemplate
	for i := range e.templates {
		if e.templates[i].ContractType == contractType {
			tpl = &e.templates[i]
			break
		}
	}
	if tpl == nil {
		return nil
	}

	var missing []model.MissingTerm
	for _, section := range tpl.RequiredSections {
		found := false
		for _, keyword := range section.Keywords {
			if strings.Contains(e.textLower, strings.ToLower(keyword)) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		description := section.Description
		if description == "" {
			description = "Missing " + section.Name + " section"
		}
		missing = append(missing, model.MissingTerm{
			ID:             section.ID,
			Name:           section.Name,
			Importance:     section.Importance,
			Description:    description,
			Recommendation: "Add a " + section.Name + " section to the contract",
		})
	}

	return missing
}

// Severity point weights for detected clauses and missing terms.
const (
	clauseCriticalPoints = 25
	clauseHighPoints     = 15
	clauseMediumPoints   = 8
	clauseLowPoints      = 3

	missingCriticalPoints = 15
	missingHighPoints     = 10
	missingMediumPoints   = 5
	missingLowPoints      = 2
)

// CalculateRiskScore accumulates severity-weighted points from detected
// clauses and missing terms, clamps the total to 100 and derives the risk
// level from the fixed thresholds (>=70 critical, >=50 high, >=30 medium).
func CalculateRiskScore(clauses []model.DetectedClause, missing []model.MissingTerm) model.RiskScore {
	score := 0
	var breakdown model.RiskBreakdown

	for _, clause := range clauses {
		switch clause.Severity {
		case model.SeverityCritical:
			score += clauseCriticalPoints
			breakdown.CriticalIssues++
		case model.SeverityHigh:
			score += clauseHighPoints
			breakdown.HighRiskClauses++
		case model.SeverityMedium:
			score += clauseMediumPoints
			breakdown.MediumRiskClauses++
		case model.SeverityLow:
			score += clauseLowPoints
			breakdown.LowRiskClauses++
		}
	}

	for _, term := range missing {
		switch term.Importance {
		case model.SeverityCritical:
			score += missingCriticalPoints
		case model.SeverityHigh:
			score += missingHighPoints
		case model.SeverityMedium:
			score += missingMediumPoints
		case model.SeverityLow:
			score += missingLowPoints
		default:
			continue
		}
		breakdown.MissingTerms++
	}

	if score > 100 {
		score = 100
	}

	return model.RiskScore{
		Overall:   score,
		Breakdown: breakdown,
		RiskLevel: RiskLevelFor(score),
	}
}

// RiskLevelFor maps an overall score to its risk level.
func RiskLevelFor(score int) model.RiskLevel {
	switch {
	case score >= 70:
		return model.RiskCritical
	case score >= 50:
		return model.RiskHigh
	case score >= 30:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

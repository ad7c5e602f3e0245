package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/josedguti/contract-guard-ai-app/model"
)

func TestDefaultValidates(t *testing.T) {
	set := Default()

	if err := set.Validate(); err != nil {
		t.Fatalf("Default configuration failed validation: %v", err)
	}
	if len(set.Rules) == 0 {
		t.Error("Expected built-in rules")
	}
	if len(set.Templates) == 0 {
		t.Error("Expected built-in templates")
	}
}

func TestLoadDefaults(t *testing.T) {
	set, err := Load("", "")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if len(set.Rules) != len(DefaultRules()) {
		t.Errorf("Expected %d default rules, got %d", len(DefaultRules()), len(set.Rules))
	}
	if len(set.Templates) != len(DefaultTemplates()) {
		t.Errorf("Expected %d default templates, got %d", len(DefaultTemplates()), len(set.Templates))
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()

	rulesYAML := `rules:
  - id: test-rule
    name: Test Rule
    category: risk
    severity: high
    patterns:
      - type: phrase
        values:
          - "sole discretion"
    description: A test rule
    recommendation: Review the clause
`
	templatesYAML := `templates:
  - contract_type: lease
    display_name: Lease Agreement
    identifiers:
      - landlord
      - tenant
    required_sections:
      - id: rent
        name: Rent
        importance: high
        keywords:
          - rent
          - monthly payment
`

	rulesPath := filepath.Join(dir, "rules.yaml")
	templatesPath := filepath.Join(dir, "templates.yaml")
	if err := os.WriteFile(rulesPath, []byte(rulesYAML), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}
	if err := os.WriteFile(templatesPath, []byte(templatesYAML), 0644); err != nil {
		t.Fatalf("Failed to write templates file: %v", err)
	}

	set, err := Load(rulesPath, templatesPath)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if len(set.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(set.Rules))
	}
	rule := set.Rules[0]
	if rule.ID != "test-rule" {
		t.Errorf("Expected rule id test-rule, got %s", rule.ID)
	}
	if rule.Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", rule.Severity)
	}
	if len(rule.Patterns) != 1 || rule.Patterns[0].Type != model.PatternPhrase {
		t.Errorf("Unexpected patterns: %+v", rule.Patterns)
	}

	tpl, ok := set.Template("lease")
	if !ok {
		t.Fatal("Expected lease template")
	}
	if tpl.DisplayName != "Lease Agreement" {
		t.Errorf("Unexpected display name: %s", tpl.DisplayName)
	}
	if len(tpl.RequiredSections) != 1 || tpl.RequiredSections[0].Importance != model.SeverityHigh {
		t.Errorf("Unexpected sections: %+v", tpl.RequiredSections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/non/existent/rules.yaml", ""); err == nil {
		t.Error("Expected error for missing rules file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := Load(path, ""); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestTemplateLookup(t *testing.T) {
	set := Default()

	if _, ok := set.Template("saas"); !ok {
		t.Error("Expected saas template in defaults")
	}
	if _, ok := set.Template("unknown-type"); ok {
		t.Error("Expected lookup miss for unknown type")
	}
}

func TestValidateErrors(t *testing.T) {
	validRule := model.Rule{
		ID:       "ok",
		Category: model.CategoryRisk,
		Severity: model.SeverityLow,
		Patterns: []model.Pattern{{Type: model.PatternKeyword, Values: []string{"x"}}},
	}
	validTemplate := model.ContractTemplate{
		ContractType: "saas",
		Identifiers:  []string{"subscription"},
	}

	tests := []struct {
		name string
		set  Set
	}{
		{
			name: "empty rule id",
			set: Set{Rules: []model.Rule{{
				Category: model.CategoryRisk,
				Severity: model.SeverityLow,
				Patterns: validRule.Patterns,
			}}},
		},
		{
			name: "duplicate rule id",
			set:  Set{Rules: []model.Rule{validRule, validRule}},
		},
		{
			name: "unknown severity",
			set: Set{Rules: []model.Rule{{
				ID:       "bad",
				Category: model.CategoryRisk,
				Severity: "extreme",
				Patterns: validRule.Patterns,
			}}},
		},
		{
			name: "unknown category",
			set: Set{Rules: []model.Rule{{
				ID:       "bad",
				Category: "warning",
				Severity: model.SeverityLow,
				Patterns: validRule.Patterns,
			}}},
		},
		{
			name: "rule without patterns",
			set: Set{Rules: []model.Rule{{
				ID:       "bad",
				Category: model.CategoryRisk,
				Severity: model.SeverityLow,
			}}},
		},
		{
			name: "pattern without values",
			set: Set{Rules: []model.Rule{{
				ID:       "bad",
				Category: model.CategoryRisk,
				Severity: model.SeverityLow,
				Patterns: []model.Pattern{{Type: model.PatternKeyword}},
			}}},
		},
		{
			name: "unknown pattern type",
			set: Set{Rules: []model.Rule{{
				ID:       "bad",
				Category: model.CategoryRisk,
				Severity: model.SeverityLow,
				Patterns: []model.Pattern{{Type: "fuzzy", Values: []string{"x"}}},
			}}},
		},
		{
			name: "duplicate template type",
			set:  Set{Templates: []model.ContractTemplate{validTemplate, validTemplate}},
		},
		{
			name: "template without identifiers",
			set:  Set{Templates: []model.ContractTemplate{{ContractType: "saas"}}},
		},
		{
			name: "section without keywords",
			set: Set{Templates: []model.ContractTemplate{{
				ContractType: "saas",
				Identifiers:  []string{"subscription"},
				RequiredSections: []model.RequiredSection{
					{ID: "sla", Importance: model.SeverityHigh},
				},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

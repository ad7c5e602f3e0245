// Package ruleset holds the detection rules and contract templates the
// analysis engine runs against. Both are read-only configuration: loaded
// once at startup from YAML files, or taken from the built-in defaults.
package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/josedguti/contract-guard-ai-app/model"
)

// Set is one immutable rule/template configuration. Templates keep their
// file order: contract-type detection breaks ties in favor of the template
// that appears first.
type Set struct {
	Rules     []model.Rule
	Templates []model.ContractTemplate
}

type rulesFile struct {
	Rules []model.Rule `yaml:"rules"`
}

type templatesFile struct {
	Templates []model.ContractTemplate `yaml:"templates"`
}

// Load reads rules and templates from the given YAML files. An empty path
// selects the built-in defaults for that half of the configuration.
func Load(rulesPath, templatesPath string) (*Set, error) {
	set := &Set{
		Rules:     DefaultRules(),
		Templates: DefaultTemplates(),
	}

	if rulesPath != "" {
		data, err := os.ReadFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read rules file: %w", err)
		}
		var rf rulesFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("failed to parse rules file: %w", err)
		}
		set.Rules = rf.Rules
	}

	if templatesPath != "" {
		data, err := os.ReadFile(templatesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read templates file: %w", err)
		}
		var tf templatesFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("failed to parse templates file: %w", err)
		}
		set.Templates = tf.Templates
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Default returns the built-in rule and template configuration.
func Default() *Set {
	return &Set{
		Rules:     DefaultRules(),
		Templates: DefaultTemplates(),
	}
}

// Template looks up a template by contract type.
func (s *Set) Template(t model.ContractType) (model.ContractTemplate, bool) {
	for _, tpl := range s.Templates {
		if tpl.ContractType == t {
			return tpl, true
		}
	}
	return model.ContractTemplate{}, false
}

// Validate checks structural invariants: unique non-empty rule IDs, known
// enum values, one template per contract type. Pattern values themselves
// (e.g. regex syntax) are not validated here; a value the matcher cannot
// use is skipped at match time.
func (s *Set) Validate() error {
	ruleIDs := make(map[string]bool)
	for _, rule := range s.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rule with empty id")
		}
		if ruleIDs[rule.ID] {
			return fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		ruleIDs[rule.ID] = true

		if !rule.Category.Valid() {
			return fmt.Errorf("rule %q: unknown category %q", rule.ID, rule.Category)
		}
		if !rule.Severity.Valid() {
			return fmt.Errorf("rule %q: unknown severity %q", rule.ID, rule.Severity)
		}
		if len(rule.Patterns) == 0 {
			return fmt.Errorf("rule %q: no patterns", rule.ID)
		}
		for i, p := range rule.Patterns {
			switch p.Type {
			case model.PatternKeyword, model.PatternPhrase, model.PatternRegex, model.PatternProximity:
			default:
				return fmt.Errorf("rule %q: pattern %d: unknown type %q", rule.ID, i, p.Type)
			}
			if len(p.Values) == 0 {
				return fmt.Errorf("rule %q: pattern %d: no values", rule.ID, i)
			}
		}
	}

	types := make(map[model.ContractType]bool)
	for _, tpl := range s.Templates {
		if tpl.ContractType == "" {
			return fmt.Errorf("template with empty contract_type")
		}
		if types[tpl.ContractType] {
			return fmt.Errorf("duplicate template for contract type %q", tpl.ContractType)
		}
		types[tpl.ContractType] = true

		if len(tpl.Identifiers) == 0 {
			return fmt.Errorf("template %q: no identifiers", tpl.ContractType)
		}
		for _, section := range tpl.RequiredSections {
			if section.ID == "" {
				return fmt.Errorf("template %q: section with empty id", tpl.ContractType)
			}
			if !section.Importance.Valid() {
				return fmt.Errorf("template %q: section %q: unknown importance %q",
					tpl.ContractType, section.ID, section.Importance)
			}
			if len(section.Keywords) == 0 {
				return fmt.Errorf("template %q: section %q: no keywords", tpl.ContractType, section.ID)
			}
		}
	}

	return nil
}

package model

import (
	"time"
)

// ContractType tags a contract template, e.g. "saas", "employment", "nda".
type ContractType string

// RequiredSection is a section a contract of a given type is expected to have.
type RequiredSection struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Importance  Severity `yaml:"importance" json:"importance"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ContractTemplate is the reference definition of a contract type:
// the keywords that identify it and the sections it must contain.
type ContractTemplate struct {
	ContractType     ContractType      `yaml:"contract_type" json:"contract_type"`
	DisplayName      string            `yaml:"display_name" json:"display_name"`
	Identifiers      []string          `yaml:"identifiers" json:"identifiers"`
	RequiredSections []RequiredSection `yaml:"required_sections" json:"required_sections"`
}

// ContractMetadata describes the analyzed document.
type ContractMetadata struct {
	DetectedType ContractType `json:"detected_type,omitempty"` // empty when no type was detected
	Confidence   float64      `json:"confidence"`              // 0-100
	WordCount    int          `json:"word_count"`
	QualityScore int          `json:"quality_score"` // extraction quality, 0-100
	ExtractedAt  time.Time    `json:"extracted_at"`
}

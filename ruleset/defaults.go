package ruleset

import (
	"github.com/josedguti/contract-guard-ai-app/model"
)

// DefaultRules returns the built-in unfair-terms rule set. Used when no
// external rules file is configured.
func DefaultRules() []model.Rule {
	return []model.Rule{
		{
			ID:       "unlimited-liability",
			Name:     "Unlimited Liability",
			Category: model.CategoryRisk,
			Severity: model.SeverityCritical,
			Patterns: []model.Pattern{
				{Type: model.PatternProximity, Values: []string{"liability", "unlimited"}, Proximity: 120},
				{Type: model.PatternPhrase, Values: []string{"without limitation of liability", "no limit on liability"}},
			},
			Description:    "Liability exposure is not capped, leaving one party open to unbounded claims.",
			Recommendation: "Negotiate a liability cap tied to fees paid over the preceding 12 months.",
		},
		{
			ID:       "broad-indemnification",
			Name:     "Broad Indemnification",
			Category: model.CategoryRisk,
			Severity: model.SeverityHigh,
			Patterns: []model.Pattern{
				{Type: model.PatternKeyword, Values: []string{"indemnify", "indemnification", "hold harmless"}},
			},
			Description:    "An indemnity obligation that may cover losses beyond your control.",
			Recommendation: "Limit indemnity to third-party claims caused by your own breach or negligence.",
		},
		{
			ID:       "unilateral-termination",
			Name:     "Unilateral Termination",
			Category: model.CategoryRisk,
			Severity: model.SeverityHigh,
			Patterns: []model.Pattern{
				{Type: model.PatternPhrase, Values: []string{"terminate at any time", "terminate this agreement at its sole discretion"}},
				{Type: model.PatternProximity, Values: []string{"terminate", "sole discretion"}, Proximity: 150},
			},
			Description:    "One party may end the agreement at will while the other remains bound.",
			Recommendation: "Require termination for cause, or a mutual termination-for-convenience right with notice.",
		},
		{
			ID:       "jury-trial-waiver",
			Name:     "Jury Trial / Class Action Waiver",
			Category: model.CategoryRisk,
			Severity: model.SeverityHigh,
			Patterns: []model.Pattern{
				{Type: model.PatternRegex, Values: []string{`waiv\w*\s+(?:the\s+)?right\s+to\s+(?:a\s+)?jury`}},
				{Type: model.PatternPhrase, Values: []string{"binding arbitration", "class action waiver"}},
			},
			Description:    "Disputes must go to arbitration and the right to a jury or class action is waived.",
			Recommendation: "Ask for carve-outs for injunctive relief and small-claims court.",
		},
		{
			ID:       "ip-assignment",
			Name:     "Intellectual Property Assignment",
			Category: model.CategoryRisk,
			Severity: model.SeverityHigh,
			Patterns: []model.Pattern{
				{Type: model.PatternProximity, Values: []string{"intellectual property", "assign"}, Proximity: 150},
				{Type: model.PatternPhrase, Values: []string{"work made for hire", "work for hire"}},
			},
			Description:    "Ownership of intellectual property transfers to the other party.",
			Recommendation: "Carve out pre-existing IP and anything created outside the engagement.",
		},
		{
			ID:       "auto-renewal",
			Name:     "Automatic Renewal",
			Category: model.CategoryRisk,
			Severity: model.SeverityMedium,
			Patterns: []model.Pattern{
				{Type: model.PatternPhrase, Values: []string{"automatically renew", "automatic renewal", "auto-renew"}},
			},
			Description:    "The agreement renews on its own unless cancelled inside a notice window.",
			Recommendation: "Calendar the renewal date and the cancellation notice deadline.",
		},
		{
			ID:       "unilateral-amendment",
			Name:     "Unilateral Amendment",
			Category: model.CategoryRisk,
			Severity: model.SeverityMedium,
			Patterns: []model.Pattern{
				{Type: model.PatternRegex, Values: []string{`(?:modify|amend|change)\s+(?:this\s+agreement|these\s+terms)\s+at\s+any\s+time`}},
			},
			Description:    "Terms can be changed by one party without consent.",
			Recommendation: "Require written agreement, or at least advance notice with a right to terminate.",
		},
		{
			ID:       "non-compete",
			Name:     "Non-Compete Clause",
			Category: model.CategoryRisk,
			Severity: model.SeverityMedium,
			Patterns: []model.Pattern{
				{Type: model.PatternRegex, Values: []string{`non-?compet\w+`}},
				{Type: model.PatternPhrase, Values: []string{"covenant not to compete"}},
			},
			Description:    "Restricts working for or starting a competing business.",
			Recommendation: "Narrow the scope, geography and duration; check enforceability in your jurisdiction.",
		},
		{
			ID:       "liquidated-damages",
			Name:     "Liquidated Damages",
			Category: model.CategoryRisk,
			Severity: model.SeverityMedium,
			Patterns: []model.Pattern{
				{Type: model.PatternPhrase, Values: []string{"liquidated damages"}},
			},
			Description:    "A fixed penalty applies on breach regardless of actual loss.",
			Recommendation: "Check the amount is a genuine pre-estimate of loss, not a penalty.",
		},
		{
			ID:       "perpetual-confidentiality",
			Name:     "Perpetual Confidentiality",
			Category: model.CategoryRisk,
			Severity: model.SeverityMedium,
			Patterns: []model.Pattern{
				{Type: model.PatternProximity, Values: []string{"confidential", "perpetuity"}, Proximity: 150},
				{Type: model.PatternPhrase, Values: []string{"survive indefinitely", "perpetual confidentiality"}},
			},
			Description:    "Confidentiality obligations never expire.",
			Recommendation: "Bound the obligation, commonly 3 to 5 years after termination.",
		},
		{
			ID:       "no-refund",
			Name:     "No Refund",
			Category: model.CategoryRisk,
			Severity: model.SeverityLow,
			Patterns: []model.Pattern{
				{Type: model.PatternPhrase, Values: []string{"non-refundable", "no refunds", "not refundable"}},
			},
			Description:    "Fees are kept even if the service is terminated early.",
			Recommendation: "Ask for pro-rated refunds on termination without cause.",
		},
		{
			ID:       "late-payment-interest",
			Name:     "Late Payment Interest",
			Category: model.CategoryObligation,
			Severity: model.SeverityLow,
			Patterns: []model.Pattern{
				{Type: model.PatternRegex, Values: []string{`(?:late\s+(?:fee|charge)|interest\s+(?:rate\s+)?of\s+\d+(?:\.\d+)?\s*%)`}},
			},
			Description:    "Overdue amounts accrue interest or late fees.",
			Recommendation: "Confirm the rate is reasonable and that disputed invoices are excluded.",
		},
	}
}

// DefaultTemplates returns the built-in contract templates in detection
// order: saas, employment, nda.
func DefaultTemplates() []model.ContractTemplate {
	return []model.ContractTemplate{
		{
			ContractType: "saas",
			DisplayName:  "SaaS / Subscription Agreement",
			Identifiers: []string{
				"software as a service", "saas", "subscription", "service level",
				"uptime", "hosted service", "licensed software",
			},
			RequiredSections: []model.RequiredSection{
				{
					ID: "saas-data-protection", Name: "Data Protection", Importance: model.SeverityCritical,
					Keywords:    []string{"data protection", "personal data", "gdpr", "data processing"},
					Description: "How customer data is processed, protected and returned.",
				},
				{
					ID: "saas-liability-cap", Name: "Limitation of Liability", Importance: model.SeverityCritical,
					Keywords:    []string{"limitation of liability", "liability shall not exceed", "aggregate liability"},
					Description: "A cap on each party's liability under the agreement.",
				},
				{
					ID: "saas-termination", Name: "Termination", Importance: model.SeverityHigh,
					Keywords:    []string{"termination", "terminate"},
					Description: "How and when the subscription can be ended.",
				},
				{
					ID: "saas-sla", Name: "Service Levels", Importance: model.SeverityHigh,
					Keywords:    []string{"service level", "uptime", "availability", "sla"},
					Description: "Committed availability and remedies for missing it.",
				},
				{
					ID: "saas-payment", Name: "Payment Terms", Importance: model.SeverityMedium,
					Keywords:    []string{"payment", "fees", "invoice", "billing"},
					Description: "What is owed, when, and what happens on late payment.",
				},
				{
					ID: "saas-support", Name: "Support", Importance: model.SeverityLow,
					Keywords:    []string{"support", "maintenance", "response time"},
					Description: "Support channels and response commitments.",
				},
			},
		},
		{
			ContractType: "employment",
			DisplayName:  "Employment Contract",
			Identifiers: []string{
				"employee", "employer", "employment", "salary", "position",
				"duties", "probation",
			},
			RequiredSections: []model.RequiredSection{
				{
					ID: "emp-compensation", Name: "Compensation", Importance: model.SeverityCritical,
					Keywords:    []string{"salary", "compensation", "wage", "remuneration"},
					Description: "Base pay, bonuses and how they are reviewed.",
				},
				{
					ID: "emp-termination", Name: "Termination", Importance: model.SeverityHigh,
					Keywords:    []string{"termination", "notice period", "dismissal"},
					Description: "Notice periods and grounds for ending employment.",
				},
				{
					ID: "emp-duties", Name: "Duties and Role", Importance: model.SeverityHigh,
					Keywords:    []string{"duties", "responsibilities", "job title", "position"},
					Description: "What the role actually covers.",
				},
				{
					ID: "emp-benefits", Name: "Benefits", Importance: model.SeverityMedium,
					Keywords:    []string{"benefits", "vacation", "leave", "pension", "insurance"},
					Description: "Holiday, leave and other entitlements.",
				},
				{
					ID: "emp-confidentiality", Name: "Confidentiality", Importance: model.SeverityMedium,
					Keywords:    []string{"confidential", "confidentiality"},
					Description: "What information must be kept confidential after leaving.",
				},
			},
		},
		{
			ContractType: "nda",
			DisplayName:  "Non-Disclosure Agreement",
			Identifiers: []string{
				"non-disclosure", "nondisclosure", "confidential information",
				"disclosing party", "receiving party",
			},
			RequiredSections: []model.RequiredSection{
				{
					ID: "nda-definition", Name: "Definition of Confidential Information", Importance: model.SeverityCritical,
					Keywords:    []string{"confidential information means", "definition of confidential"},
					Description: "What exactly counts as confidential.",
				},
				{
					ID: "nda-term", Name: "Term and Duration", Importance: model.SeverityHigh,
					Keywords:    []string{"term of this agreement", "shall remain in effect", "duration"},
					Description: "How long the confidentiality obligation lasts.",
				},
				{
					ID: "nda-exclusions", Name: "Exclusions", Importance: model.SeverityMedium,
					Keywords:    []string{"exclusions", "publicly available", "independently developed"},
					Description: "Information that is not covered, e.g. already public.",
				},
				{
					ID: "nda-return", Name: "Return of Materials", Importance: model.SeverityMedium,
					Keywords:    []string{"return or destroy", "return of materials", "destruction"},
					Description: "What happens to shared materials when the NDA ends.",
				},
			},
		},
	}
}

package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josedguti/contract-guard-ai-app/model"
)

// ParseInsights normalizes the language model's free-form reply into the
// four insight fields. Each section is located by trying an ordered list of
// heading formats; when none matches, that field stays empty and the rest
// of the result is unaffected.

// headingFormat builds the extraction regex for one section in one of the
// supported reply formats.
type headingFormat func(index int, label string) *regexp.Regexp

// Supported formats, in fallback order: "1. Summary", "1) Summary",
// "**Summary**". Content runs to the next heading of the same format or to
// the end of the reply.
var headingFormats = []headingFormat{
	func(index int, label string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(`(?is)%d\.\s*%s[^\n]*\n(.*?)(?:\n\d\.|$)`, index, label))
	},
	func(index int, label string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(`(?is)%d\)\s*%s[^\n]*\n(.*?)(?:\n\d\)|$)`, index, label))
	},
	func(index int, label string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(`(?is)\*\*%s\*\*[:\s]*(.*?)(?:\*\*|$)`, label))
	},
}

// Section labels by numbered position. Matching is case-insensitive and
// "Critical" is optional for the warnings heading.
const (
	summaryLabel         = `Summary`
	keyFindingsLabel     = `Key\s+Findings`
	recommendationsLabel = `Recommendations`
	warningsLabel        = `(?:Critical\s+)?Warnings?`
)

type sectionMatcher struct {
	strategies []*regexp.Regexp
}

func newSectionMatcher(index int, label string) sectionMatcher {
	strategies := make([]*regexp.Regexp, 0, len(headingFormats))
	for _, format := range headingFormats {
		strategies = append(strategies, format(index, label))
	}
	return sectionMatcher{strategies: strategies}
}

var (
	summarySection         = newSectionMatcher(1, summaryLabel)
	keyFindingsSection     = newSectionMatcher(2, keyFindingsLabel)
	recommendationsSection = newSectionMatcher(3, recommendationsLabel)
	warningsSection        = newSectionMatcher(4, warningsLabel)
)

// extract returns the section's content block, trying each strategy in order.
func (m sectionMatcher) extract(response string) (string, bool) {
	for _, re := range m.strategies {
		if match := re.FindStringSubmatch(response); match != nil {
			return strings.TrimSpace(match[1]), true
		}
	}
	return "", false
}

var (
	bulletLine    = regexp.MustCompile(`^[-*•\d.]+\s*(.+)$`)
	leadingBullet = regexp.MustCompile(`^[-*•]\s*`)
)

// ParseInsights parses the model's reply into structured insights.
func ParseInsights(response string) model.AIInsights {
	insights := model.AIInsights{}

	if block, ok := summarySection.extract(response); ok {
		insights.Summary = strings.TrimSpace(leadingBullet.ReplaceAllString(block, ""))
	}
	if block, ok := keyFindingsSection.extract(response); ok {
		insights.KeyFindings = extractBullets(block)
	}
	if block, ok := recommendationsSection.extract(response); ok {
		insights.Recommendations = extractBullets(block)
	}
	if block, ok := warningsSection.extract(response); ok {
		insights.Warnings = extractBullets(block)
	}

	return insights
}

// extractBullets splits a section block into items: lines with a bullet
// marker contribute their remainder, other non-empty lines (except bold
// headings) are kept verbatim.
func extractBullets(block string) []string {
	var bullets []string

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "**") {
			continue
		}

		if match := bulletLine.FindStringSubmatch(trimmed); match != nil {
			if item := strings.TrimSpace(match[1]); item != "" {
				bullets = append(bullets, item)
			}
			continue
		}

		bullets = append(bullets, trimmed)
	}

	return bullets
}

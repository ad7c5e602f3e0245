package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/josedguti/contract-guard-ai-app/model"
	"github.com/josedguti/contract-guard-ai-app/pkg/dateparse"
)

// maxObligations caps the extracted obligations per document.
const maxObligations = 20

// Three ordered pattern families: modal obligation verbs, responsibility
// phrases and payment indicators, each capturing 10-200 characters up to
// the next period or semicolon.
var obligationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:shall|must|will|required to|obligated to)\s+([^.;]{10,200})`),
	regexp.MustCompile(`(?i)\b(?:responsible for|responsibility to)\s+([^.;]{10,200})`),
	regexp.MustCompile(`(?i)\b(?:pay|payment of|fee of|charge of)\s+([^.;]{10,200})`),
}

// obligationClasses is the priority-ordered classification: the first
// predicate matching the extracted span decides the type.
var obligationClasses = []struct {
	predicate *regexp.Regexp
	label     model.ObligationType
}{
	{regexp.MustCompile(`(?i)\b(?:pay|payment|fee|charge|invoice)\b`), model.ObligationPayment},
	{regexp.MustCompile(`(?i)\b(?:deliver|provide|submit|send)\b`), model.ObligationDelivery},
	{regexp.MustCompile(`(?i)\b(?:notice|notify|inform)\b`), model.ObligationNotice},
	{regexp.MustCompile(`(?i)\b(?:deadline|due|within|before)\b`), model.ObligationDeadline},
}

// ParseObligations extracts obligations from the text in scan order,
// capped to the first 20 across all pattern families. Deadlines come from
// the first absolute date in the matched span, else from the first
// relative time expression resolved against the current instant.
func (e *Engine) ParseObligations() []model.Obligation {
	return e.parseObligationsAt(time.Now())
}

func (e *Engine) parseObligationsAt(ref time.Time) []model.Obligation {
	var obligations []model.Obligation

	for _, pattern := range obligationPatterns {
		if len(obligations) >= maxObligations {
			break
		}
		for _, m := range pattern.FindAllStringSubmatchIndex(e.text, -1) {
			if len(obligations) >= maxObligations {
				break
			}

			span := e.text[m[0]:m[1]]
			description := strings.TrimSpace(e.text[m[2]:m[3]])

			obligations = append(obligations, model.Obligation{
				ID:            fmt.Sprintf("obligation-%d", len(obligations)+1),
				Type:          classifyObligation(span),
				Description:   description,
				Party:         "unknown",
				Deadline:      obligationDeadline(span, ref),
				ExtractedText: span,
				Position:      m[0],
			})
		}
	}

	return obligations
}

// classifyObligation walks the priority list and returns the first label
// whose predicate matches; "other" when none do.
func classifyObligation(span string) model.ObligationType {
	for _, class := range obligationClasses {
		if class.predicate.MatchString(span) {
			return class.label
		}
	}
	return model.ObligationOther
}

// obligationDeadline resolves a deadline from the span: first absolute
// date, else first relative time expression added to ref, else none.
func obligationDeadline(span string, ref time.Time) *time.Time {
	if dates := dateparse.ExtractDates(span); len(dates) > 0 {
		d := dates[0].Date
		return &d
	}

	if rels := dateparse.ExtractRelativeTime(span); len(rels) > 0 {
		if d, ok := dateparse.FutureDate(rels[0].Amount, rels[0].Unit, ref); ok {
			return &d
		}
	}

	return nil
}

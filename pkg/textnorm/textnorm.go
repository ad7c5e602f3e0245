// Package textnorm cleans OCR-extracted contract text and scores
// extraction quality.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	manyBreaks   = regexp.MustCompile(`\n{3,}`)

	isolatedZero = regexp.MustCompile(`\b0\b`)
	isolatedL    = regexp.MustCompile(`\bl\b`)

	pageNumber    = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	pageXofY      = regexp.MustCompile(`(?mi)^\s*Page\s+\d+\s+of\s+\d+\s*$`)
	separatorLine = regexp.MustCompile(`(?m)^\s*[-_=]{3,}\s*$`)

	specialChar = regexp.MustCompile(`[^\w\s.,;:'"!?-]`)
	sentenceRe  = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// quote and dash replacements applied after the regex substitutions
var charReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"—", "-", // em dash
	"–", "-", // en dash
	"|", "I",
)

// legalTerms is the fixed reference list used by AssessQuality.
var legalTerms = []string{
	"agreement", "contract", "party", "shall", "terms", "conditions", "liability",
}

// Clean normalizes OCR output: collapses whitespace, fixes common
// character-recognition errors, strips page artifacts and trims lines.
// Clean(Clean(s)) == Clean(s) for any s.
func Clean(text string) string {
	cleaned := horizontalWS.ReplaceAllString(text, " ")

	cleaned = isolatedZero.ReplaceAllString(cleaned, "O")
	cleaned = isolatedL.ReplaceAllString(cleaned, "I")
	cleaned = charReplacer.Replace(cleaned)

	cleaned = pageNumber.ReplaceAllString(cleaned, "")
	cleaned = pageXofY.ReplaceAllString(cleaned, "")
	cleaned = separatorLine.ReplaceAllString(cleaned, "")

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	cleaned = strings.Join(lines, "\n")

	// Collapse runs of blank lines last: stripping artifact lines above can
	// leave 3+ consecutive breaks, and the result must be stable under
	// repeated cleaning.
	cleaned = manyBreaks.ReplaceAllString(cleaned, "\n\n")

	return strings.TrimSpace(cleaned)
}

// WordCount returns the number of whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Sentences splits text into sentences at least minLength characters long.
func Sentences(text string, minLength int) []string {
	var out []string
	for _, s := range sentenceRe.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) >= minLength {
			out = append(out, s)
		}
	}
	return out
}

// AssessQuality scores extraction quality from 0 to 100. Short text and
// high rates of garbage characters or single-character words lower the
// score; the presence of common legal terms raises it.
func AssessQuality(text string) int {
	score := 100

	if len(text) < 100 {
		score -= 30
	}

	if len(text) > 0 {
		specials := len(specialChar.FindAllString(text, -1))
		if float64(specials)/float64(len(text)) > 0.05 {
			score -= 30
		}
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		single := 0
		for _, w := range words {
			if len(w) == 1 {
				single++
			}
		}
		if float64(single)/float64(len(words)) > 0.1 {
			score -= 20
		}
	}

	lower := strings.ToLower(text)
	for _, term := range legalTerms {
		if strings.Contains(lower, term) {
			score += 2
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

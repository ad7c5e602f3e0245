package analysis

import (
	"regexp"
	"strings"

	"github.com/josedguti/contract-guard-ai-app/model"
)

const (
	// defaultContextLength is the context window recorded around a match
	// when the pattern does not set its own.
	defaultContextLength = 200
	// defaultProximity is the search distance for proximity patterns.
	defaultProximity = 100
)

// MatchPattern evaluates one pattern against text and returns every match
// with its character position and surrounding context. It is a pure
// function; a malformed pattern (bad regex, missing proximity term)
// produces no matches rather than an error.
func MatchPattern(text string, p model.Pattern) []model.Match {
	return matchPattern(text, strings.ToLower(text), p)
}

func matchPattern(text, textLower string, p model.Pattern) []model.Match {
	contextLen := p.Context
	if contextLen <= 0 {
		contextLen = defaultContextLength
	}

	switch p.Type {
	case model.PatternKeyword, model.PatternPhrase:
		var matches []model.Match
		for _, value := range p.Values {
			for _, pos := range findLiteral(textLower, value) {
				matches = append(matches, model.Match{
					Text:     text[pos : pos+len(value)],
					Position: pos,
					Context:  matchContext(text, pos, contextLen),
				})
			}
		}
		return matches

	case model.PatternRegex:
		var matches []model.Match
		for _, value := range p.Values {
			re, err := regexp.Compile("(?i)" + value)
			if err != nil {
				// Invalid expressions must not stop analysis.
				continue
			}
			for _, loc := range re.FindAllStringIndex(text, -1) {
				matches = append(matches, model.Match{
					Text:     text[loc[0]:loc[1]],
					Position: loc[0],
					Context:  matchContext(text, loc[0], contextLen),
				})
			}
		}
		return matches

	case model.PatternProximity:
		if len(p.Values) < 2 {
			return nil
		}
		term1, term2 := p.Values[0], p.Values[1]
		proximity := p.Proximity
		if proximity <= 0 {
			proximity = defaultProximity
		}

		term2Lower := strings.ToLower(term2)
		var matches []model.Match
		for _, pos := range findLiteral(textLower, term1) {
			start := pos - proximity
			if start < 0 {
				start = 0
			}
			end := pos + len(term1) + proximity
			if end > len(text) {
				end = len(text)
			}
			if strings.Contains(textLower[start:end], term2Lower) {
				matches = append(matches, model.Match{
					Text:     text[pos : pos+len(term1)],
					Position: pos,
					Context:  matchContext(text, pos, contextLen),
				})
			}
		}
		return matches
	}

	return nil
}

// findLiteral returns the start offsets of every non-overlapping,
// case-insensitive occurrence of value in textLower.
func findLiteral(textLower, value string) []int {
	needle := strings.ToLower(value)
	if needle == "" {
		return nil
	}

	var positions []int
	offset := 0
	for {
		i := strings.Index(textLower[offset:], needle)
		if i < 0 {
			break
		}
		positions = append(positions, offset+i)
		offset += i + len(needle)
	}
	return positions
}

// matchContext returns contextLength characters centered on pos, clipped to
// the text bounds, with ellipsis markers where the window was cut short.
func matchContext(text string, pos, contextLength int) string {
	start := pos - contextLength/2
	if start < 0 {
		start = 0
	}
	end := pos + contextLength/2
	if end > len(text) {
		end = len(text)
	}

	context := text[start:end]
	if start > 0 {
		context = "..." + context
	}
	if end < len(text) {
		context = context + "..."
	}

	return strings.TrimSpace(context)
}

package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moodbite/backend/internal/types"
)

// MatchPolicy controls which bracketed span the extractor parses when the
// raw text contains more than one candidate.
type MatchPolicy string

const (
	// MatchFirst takes the span from the first '[' to the last ']',
	// mirroring a greedy regex match. This is the default.
	MatchFirst MatchPolicy = "first"
	// MatchLast takes the span from the last top-level '[' that still
	// closes before the end of the text.
	MatchLast MatchPolicy = "last"
	// MatchValidated scans balanced spans in order and takes the first
	// one that both parses and passes the shape check.
	MatchValidated MatchPolicy = "validated"
)

const parseExcerptLen = 200

// Extractor locates a JSON array inside free text and decodes it into
// recipe candidates. The model is not guaranteed to emit pure JSON, so the
// extractor tolerates explanatory prose before and after the array.
type Extractor struct {
	Policy MatchPolicy
}

// NewExtractor returns an extractor with the given policy, defaulting to
// MatchFirst when the policy is empty or unknown.
func NewExtractor(policy MatchPolicy) *Extractor {
	switch policy {
	case MatchFirst, MatchLast, MatchValidated:
	default:
		policy = MatchFirst
	}
	return &Extractor{Policy: policy}
}

// ExtractRecipes parses the recipe array out of raw model output. It fails
// with *ParseError when no bracketed span exists, the span is not valid
// JSON, or any element lacks the minimum recipe shape.
func (e *Extractor) ExtractRecipes(raw string) ([]types.RecipeCandidate, error) {
	span, err := e.locate(raw)
	if err != nil {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: err}
	}

	var candidates []types.RecipeCandidate
	if err := json.Unmarshal([]byte(span), &candidates); err != nil {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: err}
	}

	if err := validateCandidates(candidates); err != nil {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: err}
	}

	return candidates, nil
}

// ExtractArray parses an arbitrary JSON array of objects out of raw model
// output, used for payloads like meal plans that carry their own schema.
func (e *Extractor) ExtractArray(raw string) ([]map[string]interface{}, error) {
	span, err := e.locate(raw)
	if err != nil {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: err}
	}

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: err}
	}
	if len(items) == 0 {
		return nil, &ParseError{Excerpt: excerpt(raw), Err: fmt.Errorf("empty JSON array in response")}
	}

	return items, nil
}

func (e *Extractor) locate(raw string) (string, error) {
	switch e.Policy {
	case MatchLast:
		return locateLast(raw)
	case MatchValidated:
		return locateValidated(raw)
	default:
		return locateFirst(raw)
	}
}

// locateFirst spans from the first '[' to the last ']' in the text.
func locateFirst(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return raw[start : end+1], nil
}

// locateLast takes the last top-level balanced span in the text.
func locateLast(raw string) (string, error) {
	spans := topLevelSpans(raw)
	if len(spans) == 0 {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return spans[len(spans)-1], nil
}

// locateValidated walks top-level balanced spans left to right and returns
// the first one that decodes into well-formed candidates.
func locateValidated(raw string) (string, error) {
	spans := topLevelSpans(raw)
	if len(spans) == 0 {
		return "", fmt.Errorf("no JSON array found in response")
	}
	for _, span := range spans {
		var candidates []types.RecipeCandidate
		if json.Unmarshal([]byte(span), &candidates) == nil && validateCandidates(candidates) == nil {
			return span, nil
		}
	}
	return "", fmt.Errorf("no bracketed span decoded into valid recipes")
}

// topLevelSpans returns every balanced [...] span in the text, skipping
// over arrays nested inside an outer one.
func topLevelSpans(raw string) []string {
	var spans []string
	for i := 0; i < len(raw); {
		idx := strings.Index(raw[i:], "[")
		if idx == -1 {
			break
		}
		start := i + idx
		end := matchingBracket(raw, start)
		if end == -1 {
			i = start + 1
			continue
		}
		spans = append(spans, raw[start:end+1])
		i = end + 1
	}
	return spans
}

// matchingBracket returns the index of the ']' closing the '[' at start,
// respecting nesting and string literals, or -1 when unbalanced.
func matchingBracket(raw string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func validateCandidates(candidates []types.RecipeCandidate) error {
	if len(candidates) == 0 {
		return fmt.Errorf("response contained an empty recipe array")
	}
	for i, c := range candidates {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("recipe %d is missing a title", i)
		}
		if len(c.Ingredients) == 0 {
			return fmt.Errorf("recipe %d has no ingredients", i)
		}
	}
	return nil
}

func excerpt(raw string) string {
	if len(raw) > parseExcerptLen {
		return raw[:parseExcerptLen]
	}
	return raw
}

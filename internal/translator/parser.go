package translator

import (
	"strings"

	"wordvault/internal/domain"
)

const (
	translationPrefix = "Translation:"
	explanationPrefix = "Explanation:"
)

// Parser extracts the structured result from a raw gateway reply. Pluggable
// so a stricter format (structured output mode) can replace prefix scanning
// without touching the orchestrator.
type Parser interface {
	Parse(raw string) (domain.Translation, error)
}

// LineParser scans the reply line by line for the two labeled prefixes.
// Unlabeled lines are ignored, which tolerates models that prepend
// commentary. The first occurrence of each prefix wins; repeats are ignored
// so later stray lines cannot override an already-seen value.
type LineParser struct{}

// NewLineParser creates a line-prefix parser
func NewLineParser() *LineParser {
	return &LineParser{}
}

// Parse extracts the translation and explanation. Both must be non-empty,
// otherwise the reply is unparsable.
func (p *LineParser) Parse(raw string) (domain.Translation, error) {
	var result domain.Translation

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, translationPrefix):
			if result.TranslatedWord == "" {
				result.TranslatedWord = strings.TrimSpace(strings.TrimPrefix(line, translationPrefix))
			}
		case strings.HasPrefix(line, explanationPrefix):
			if result.Explanation == "" {
				result.Explanation = strings.TrimSpace(strings.TrimPrefix(line, explanationPrefix))
			}
		}
	}

	if result.TranslatedWord == "" || result.Explanation == "" {
		return domain.Translation{}, domain.ErrUnparsableResponse
	}

	return result, nil
}

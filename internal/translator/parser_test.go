package translator

import (
	"testing"

	"wordvault/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestLineParser_Parse(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      domain.Translation
		expectedError error
	}{
		{
			name: "both lines in order",
			raw:  "Translation: köpek\nExplanation: bir hayvan",
			expected: domain.Translation{
				TranslatedWord: "köpek",
				Explanation:    "bir hayvan",
			},
		},
		{
			name: "lines reversed",
			raw:  "Explanation: bir hayvan\nTranslation: köpek",
			expected: domain.Translation{
				TranslatedWord: "köpek",
				Explanation:    "bir hayvan",
			},
		},
		{
			name: "commentary around labeled lines is ignored",
			raw:  "Sure! Here is the result:\nTranslation: kedi\nExplanation: evcil bir hayvan\nHope that helps!",
			expected: domain.Translation{
				TranslatedWord: "kedi",
				Explanation:    "evcil bir hayvan",
			},
		},
		{
			name: "first occurrence wins on repeated prefixes",
			raw:  "Translation: kedi\nExplanation: evcil bir hayvan\nTranslation: köpek\nExplanation: başka bir şey",
			expected: domain.Translation{
				TranslatedWord: "kedi",
				Explanation:    "evcil bir hayvan",
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  Translation:   kedi  \n  Explanation:  evcil bir hayvan  ",
			expected: domain.Translation{
				TranslatedWord: "kedi",
				Explanation:    "evcil bir hayvan",
			},
		},
		{
			name:          "missing translation line",
			raw:           "Explanation: bir hayvan",
			expectedError: domain.ErrUnparsableResponse,
		},
		{
			name:          "missing explanation line",
			raw:           "Translation: köpek",
			expectedError: domain.ErrUnparsableResponse,
		},
		{
			name:          "empty value after prefix",
			raw:           "Translation:\nExplanation: bir hayvan",
			expectedError: domain.ErrUnparsableResponse,
		},
		{
			name:          "empty reply",
			raw:           "",
			expectedError: domain.ErrUnparsableResponse,
		},
		{
			name:          "unrelated text only",
			raw:           "I cannot translate that word.",
			expectedError: domain.ErrUnparsableResponse,
		},
	}

	parser := NewLineParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.Parse(tt.raw)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

package service

import (
	"context"
	"strings"

	"wordvault/internal/domain"
	"wordvault/internal/repository"
	"wordvault/internal/translator"

	"go.uber.org/zap"
)

// PageSize is the number of words per dashboard page
const PageSize = 10

// CredentialResolver picks the API key used for a user's translation calls
type CredentialResolver interface {
	Resolve(userID string) (string, error)
}

// AddWordResult is the terminal outcome of an add-word invocation.
// Existing reports whether the word was already known; in that case Word
// carries the previously stored record untouched.
type AddWordResult struct {
	Word     *domain.Word
	Existing bool
}

// WordService runs the word-acquisition flow and serves listing and deletion
type WordService struct {
	wordRepo   repository.WordRepository
	resolver   CredentialResolver
	translator translator.Translator
	parser     translator.Parser
	logger     *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	resolver CredentialResolver,
	tr translator.Translator,
	parser translator.Parser,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:   wordRepo,
		resolver:   resolver,
		translator: tr,
		parser:     parser,
		logger:     logger,
	}
}

// AddWord acquires a word for the user: duplicate check, credential
// resolution, gateway call, parse, persist. The stored record is the only
// durable mutation and is written only after a fully parsed result exists.
// Lookup and storage use the word exactly as submitted; no normalization.
func (s *WordService) AddWord(ctx context.Context, userID, word, model string) (*AddWordResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.wordRepo.FindWord(userID, word)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &AddWordResult{Word: existing, Existing: true}, nil
	}

	apiKey, err := s.resolver.Resolve(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.translator.Translate(ctx, word, model, apiKey)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(raw)
	if err != nil {
		s.logger.Warn("gateway reply did not match the expected format",
			zap.String("word", word),
			zap.String("model", model),
		)
		return nil, err
	}

	saved, err := s.wordRepo.SaveWord(userID, word, parsed.TranslatedWord, parsed.Explanation)
	if err == domain.ErrDuplicateWord {
		// A concurrent invocation won the insert race; return its record
		winner, findErr := s.wordRepo.FindWord(userID, word)
		if findErr != nil {
			return nil, findErr
		}
		if winner != nil {
			return &AddWordResult{Word: winner, Existing: true}, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return &AddWordResult{Word: saved}, nil
}

// ListWords returns one page of the user's words, newest first, plus the total count
func (s *WordService) ListWords(userID string, page int) ([]domain.Word, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	return s.wordRepo.ListWords(userID, PageSize, offset)
}

// DeleteWord removes a word owned by the user
func (s *WordService) DeleteWord(id, userID string) error {
	return s.wordRepo.DeleteWord(id, userID)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"wordvault/internal/domain"
	"wordvault/internal/middleware"
	"wordvault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SupportedModels lists the translation backends offered to users. The first
// entry mirrors the config default.
var SupportedModels = []string{
	"google/gemma-3-27b-it:free",
	"deepseek/deepseek-r1-distill-llama-70b:free",
}

type wordResponse struct {
	ID             string    `json:"id"`
	OriginalWord   string    `json:"original_word"`
	TranslatedWord string    `json:"translated_word"`
	Explanation    string    `json:"explanation,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:             w.ID,
		OriginalWord:   w.OriginalWord,
		TranslatedWord: w.TranslatedWord,
		Explanation:    w.Explanation,
		CreatedAt:      w.CreatedAt,
	}
}

func (h *Handler) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word  string `json:"word"`
		Model string `json:"model"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	if req.Model == "" {
		req.Model = SupportedModels[0]
	}

	userID := middleware.UserID(r.Context())
	result, err := h.wordService.AddWord(r.Context(), userID, req.Word, req.Model)
	if err != nil {
		h.respondError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	} else {
		h.logger.Info("word added",
			zap.String("user_id", userID),
			zap.String("word", result.Word.OriginalWord),
		)
	}

	h.respondJSON(w, status, map[string]interface{}{
		"word":     toWordResponse(result.Word),
		"existing": result.Existing,
	})
}

func (h *Handler) handleListWords(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	userID := middleware.UserID(r.Context())
	words, total, err := h.wordService.ListWords(userID, page)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]wordResponse, 0, len(words))
	for i := range words {
		items = append(items, toWordResponse(&words[i]))
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"words":     items,
		"total":     total,
		"page":      page,
		"page_size": service.PageSize,
	})
}

func (h *Handler) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if err := h.wordService.DeleteWord(chi.URLParam(r, "id"), userID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

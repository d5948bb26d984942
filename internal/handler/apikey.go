package handler

import (
	"net/http"
	"time"

	"wordvault/internal/middleware"
	"wordvault/internal/service"

	"github.com/go-chi/chi/v5"
)

type apiKeyResponse struct {
	ID        string    `json:"id"`
	MaskedKey string    `json:"masked_key"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) handleListKeys(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	keys, err := h.keyService.ListKeys(userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]apiKeyResponse, 0, len(keys))
	for _, k := range keys {
		items = append(items, apiKeyResponse{
			ID:        k.ID,
			MaskedKey: service.MaskKey(k.Key),
			IsActive:  k.IsActive,
			CreatedAt: k.CreatedAt,
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"keys": items})
}

func (h *Handler) handleAddKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	userID := middleware.UserID(r.Context())
	key, err := h.keyService.AddKey(userID, req.Key)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, apiKeyResponse{
		ID:        key.ID,
		MaskedKey: service.MaskKey(key.Key),
		IsActive:  key.IsActive,
		CreatedAt: key.CreatedAt,
	})
}

func (h *Handler) handleActivateKey(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if err := h.keyService.ActivateKey(chi.URLParam(r, "id"), userID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleDeleteKey(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if err := h.keyService.DeleteKey(chi.URLParam(r, "id"), userID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

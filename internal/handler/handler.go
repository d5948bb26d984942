package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordvault/internal/domain"
	"wordvault/internal/middleware"
	"wordvault/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler wires all HTTP routes to the services
type Handler struct {
	authService *service.AuthService
	wordService *service.WordService
	keyService  *service.APIKeyService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	authService *service.AuthService,
	wordService *service.WordService,
	keyService *service.APIKeyService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService: authService,
		wordService: wordService,
		keyService:  keyService,
		logger:      logger,
	}
}

// Routes builds the router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)
		r.Post("/auth/forgot-password", h.handleForgotPassword)
		r.Post("/auth/reset-password", h.handleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.authService, h.logger))

			r.Post("/auth/logout", h.handleLogout)
			r.Get("/me", h.handleMe)

			r.Get("/words", h.handleListWords)
			r.Post("/words", h.handleAddWord)
			r.Delete("/words/{id}", h.handleDeleteWord)

			r.Get("/keys", h.handleListKeys)
			r.Post("/keys", h.handleAddKey)
			r.Post("/keys/{id}/activate", h.handleActivateKey)
			r.Delete("/keys/{id}", h.handleDeleteKey)
		})
	})

	return r
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.logger.Error("failed to encode response", zap.Error(err))
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the domain taxonomy to HTTP statuses and surfaces the
// message verbatim; nothing is swallowed or retried here
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var gwErr *domain.GatewayError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrDuplicateWord):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrMissingCredential):
		status = http.StatusPreconditionFailed
	case errors.As(err, &gwErr),
		errors.Is(err, domain.ErrMalformedResponse),
		errors.Is(err, domain.ErrUnparsableResponse):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		h.respondJSON(w, status, errorResponse{Error: "internal error"})
		return
	}

	h.respondJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

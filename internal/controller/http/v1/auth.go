package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

type AuthHandler struct {
	log   *slog.Logger
	authn Authenticator
}

func NewAuthHandler(log *slog.Logger, authn Authenticator) *AuthHandler {
	return &AuthHandler{
		log:   log,
		authn: authn,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *domain.User  `json:"user"`
	Token *domain.Token `json:"token"`
}

type LoginResponse struct {
	Token *domain.Token `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	user, token, err := h.authn.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	token, err := h.authn.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

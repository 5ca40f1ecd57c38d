package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-be/internal/http/respond"
	"github.com/fittrack/fittrack-be/internal/models/dto"
	"github.com/fittrack/fittrack-be/internal/service"
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	logger zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register attaches auth routes to the mux. These routes must remain
// reachable without a token.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateStruct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateIdentity) {
			respond.Error(w, http.StatusBadRequest, "username or email already exists")
			return
		}
		h.logger.Error().Err(err).Msg("register failed")
		respond.Error(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	respond.JSON(w, http.StatusOK, authResponse(res))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateStruct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.auth.Login(r.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		respond.Error(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	respond.JSON(w, http.StatusOK, authResponse(res))
}

func authResponse(res service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:    res.Token,
		UserID:   res.UserID,
		Username: res.Username,
		Email:    res.Email,
	}
}

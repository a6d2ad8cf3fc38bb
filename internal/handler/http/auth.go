package http

import (
	"encoding/json"
	"net/http"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/utils"
	"github.com/coinkeep/coin-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.writeError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: session.Token, Name: foundUser.Name}, http.StatusOK)
}

// logout ends the session that authorized the request itself.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	h.deleteSession(w, r, token)
}

// logoutByToken ends the session named in the URL. Deleting an unknown
// token is not an error: logout is idempotent.
func (h *Handler) logoutByToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	if token == "" {
		log.Err(ErrEmptyToken).Send()
		http.Error(w, ErrEmptyToken.Error(), http.StatusUnauthorized)
		return
	}

	h.deleteSession(w, r, token)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request, token string) {
	log := logger.FromRequest(r)

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		h.writeError(w, r, err, "user logout failed")
		return
	}

	log.Debug().Msg("session deleted")

	w.WriteHeader(http.StatusOK)
}

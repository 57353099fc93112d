package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/service"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("registration request failed validation")
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, errorResponse{Error: "email already registered"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser.Public(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("login request failed validation")
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	pair, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		// Unknown email and wrong password produce the same response.
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			utils.WriteJSON(w, errorResponse{Error: "invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("email", request.Email).Msg("user successfully logged in")

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("refresh request failed validation")
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		switch {
		// A vanished subject is reported the same way as a bad token.
		case errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
			errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("refresh token rejected")
			utils.WriteJSON(w, errorResponse{Error: "refresh token is expired or invalid"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// logout acknowledges the client's intent to end the session. Tokens are
// stateless and there is no revocation store, so the server has nothing to
// invalidate: clients discard their pair and the tokens age out on their own.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(r.Context())
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", user.UserID.String()).Msg("user logged out")

	w.WriteHeader(http.StatusNoContent)
}

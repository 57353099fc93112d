package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	settings, err := h.services.SettingsService.GetSettings(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("settings lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	var update models.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	settings, err := h.services.SettingsService.UpdateSettings(ctx, user.UserID, update)
	if err != nil {
		log.Err(err).Msg("settings update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

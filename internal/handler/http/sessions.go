// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	var request models.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	session, err := h.services.SessionService.CreateSession(ctx, user.UserID, request)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	sessionID, err := sessionIDFromURL(r)
	if err != nil {
		// An unparseable identifier cannot name an existing session.
		log.Err(err).Msg("malformed session id")
		writeError(w, store.ErrSessionNotFound)
		return
	}

	session, err := h.services.SessionService.GetSession(ctx, user.UserID, sessionID)
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	filter, err := sessionFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("malformed list query parameters")
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	list, err := h.services.SessionService.ListSessions(ctx, user.UserID, filter)
	if err != nil {
		log.Err(err).Msg("session listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	sessionID, err := sessionIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("malformed session id")
		writeError(w, store.ErrSessionNotFound)
		return
	}

	var update models.SessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	session, err := h.services.SessionService.UpdateSession(ctx, user.UserID, sessionID, update)
	if err != nil {
		log.Err(err).Msg("session update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("authenticated user is missing from context")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	sessionID, err := sessionIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("malformed session id")
		writeError(w, store.ErrSessionNotFound)
		return
	}

	if err := h.services.SessionService.DeleteSession(ctx, user.UserID, sessionID); err != nil {
		log.Err(err).Msg("session deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sessionIDFromURL extracts and parses the {sessionID} URL parameter.
func sessionIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "sessionID"))
}

// sessionFilterFromQuery builds a [models.SessionFilter] from the optional
// type/starred/limit/offset query parameters of the list endpoint. Values
// that fail to parse are rejected here; range checks (limit bounds, known
// session types) belong to the service-side validator.
func sessionFilterFromQuery(r *http.Request) (models.SessionFilter, error) {
	var filter models.SessionFilter
	query := r.URL.Query()

	if rawType := query.Get("type"); rawType != "" {
		sessionType := models.SessionType(rawType)
		filter.Type = &sessionType
	}

	if rawStarred := query.Get("starred"); rawStarred != "" {
		starred, err := strconv.ParseBool(rawStarred)
		if err != nil {
			return models.SessionFilter{}, err
		}
		filter.Starred = &starred
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			return models.SessionFilter{}, err
		}
		filter.Limit = limit
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 64)
		if err != nil {
			return models.SessionFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}

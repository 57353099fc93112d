package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
)

// auth is the authorization gate protecting every resource route.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], requires the "type"
// claim to be "access", resolves the subject to a live account via
// [service.AuthService.CurrentUser], and — on success — stores the resolved
// [models.User] in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// Every failure mode — missing or malformed header, bad signature, expired
// token, a refresh token presented in place of an access token, a deleted
// account — is answered with the same HTTP 403 and a single generic body.
// The precise cause is logged server-side via [logger.FromRequest] and never
// disclosed to the caller.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		forbidden := func(err error, msg string) {
			log.Err(err).Msg(msg)
			utils.WriteJSON(w, errorResponse{Error: "forbidden"}, http.StatusForbidden)
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			forbidden(ErrEmptyAuthorizationHeader, "missing authorization header")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			forbidden(err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			forbidden(err, "token rejected")
			return
		}

		if token.TokenType != models.TokenTypeAccess {
			forbidden(ErrNotAnAccessToken, "non-access token presented at the gate")
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, token)
		if err != nil {
			forbidden(err, "token subject could not be resolved")
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

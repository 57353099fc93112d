// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"

	"github.com/MKhiriev/inbot-accounts/models"
)

type contextKey string

// UserCtxKey is the context key under which the authorization middleware
// stores the authenticated models.User for downstream handlers.
const UserCtxKey contextKey = "user"

// GetUserFromContext retrieves the authenticated user previously stored
// in the request context by the authorization middleware.
func GetUserFromContext(ctx context.Context) (models.User, error) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	if !ok {
		return models.User{}, errors.New("no user found in context")
	}
	return user, nil
}

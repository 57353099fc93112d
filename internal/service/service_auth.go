package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/inbot-accounts/internal/config"
	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long a newly issued access token remains valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a newly issued refresh token remains valid.
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// It hashes the password with argon2id and delegates persistence to the
// UserRepository, which inserts the user row and its default settings row
// in a single transaction. The database unique index on email is the final
// authority on duplicates; there is no advisory pre-check.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Username == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh token pair.
//
// The account is looked up by email and the supplied password is verified
// against the stored argon2id digest. A missing account and a wrong
// password both yield ErrInvalidCredentials so that responses never reveal
// which of the two failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(request.Password, foundUser.PasswordHash) {
		log.Error().
			Str("id", foundUser.UserID.String()).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issueTokenPair(ctx, foundUser)
}

// Refresh exchanges a valid refresh token for a brand-new access/refresh
// pair.
//
// The token must carry the "refresh" type claim; access tokens presented
// here are rejected. The subject is re-resolved against the user store so
// that deleted accounts cannot keep refreshing. The old refresh token is
// not revoked and stays usable until its own expiry.
//
// Returns:
//   - ErrTokenIsExpiredOrInvalid on any token validation failure, including
//     wrong token type.
//   - A wrapped store.ErrNoUserWasFound if the subject no longer exists.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("refresh token validation failed")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	if token.TokenType != models.TokenTypeRefresh {
		log.Error().Str("type", token.TokenType).Msg("non-refresh token presented to refresh")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID.String()).Msg("refresh subject lookup failed")
		return models.TokenPair{}, fmt.Errorf("refresh subject lookup failed: %w", err)
	}

	return a.issueTokenPair(ctx, foundUser)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CurrentUser resolves the subject of an already-validated token to the
// full user record. Used by the authorization middleware to attach the
// authenticated user to the request context.
func (a *authService) CurrentUser(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID.String()).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return foundUser, nil
}

// issueTokenPair generates the access/refresh pair for user and assembles
// the response body: bearer token type, access TTL in seconds, public user
// projection.
func (a *authService) issueTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.TokenTypeAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID.String()).Msg("access token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.TokenTypeRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID.String()).Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
		TokenType:    "bearer",
		ExpiresIn:    int64(a.accessTokenTTL.Seconds()),
		User:         user.Public(),
	}, nil
}

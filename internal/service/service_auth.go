// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and the credential
// scheme of the active storage backend.
type authService struct {
	users       store.UserRepository
	credentials store.Credentials

	ids        idGenerator
	studentIDs studentIDGenerator

	// absentHash is verified against on logins for unknown emails so that
	// they cost the same as a wrong password.
	absentHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repository and credential scheme and populated with token parameters
// from cfg.
func NewAuthService(users store.UserRepository, credentials store.Credentials, cfg config.App, logger *logger.Logger) AuthService {
	absentHash, err := credentials.Hash(absentPassword)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("failed to hash placeholder password")
	}

	return &authService{
		users:         users,
		credentials:   credentials,
		ids:           utils.NewUUIDGenerator(),
		studentIDs:    utils.NewStudentIDGenerator(),
		absentHash:    absentHash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// absentPassword seeds absentHash. It never matches a stored account
// because nothing is ever stored under it.
const absentPassword = "career-compass/no-such-account"

// Register creates a new student account with a generated student id.
// The elevated role cannot be requested here; administrators come from
// EnsureAdmin.
//
// Returns the stored user or:
//   - ErrAdminSelfRegistration if the request asks for the admin role.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - a wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if req.Role.IsElevated() {
		logger.FromContext(ctx).Warn().Str("func", "authService.Register").Msg("admin self-registration refused")
		return models.User{}, ErrAdminSelfRegistration
	}

	req.Role = models.RoleStudent
	return a.createUser(ctx, req)
}

// EnsureAdmin makes sure an administrator account exists for req.Email.
// An existing admin is returned as is; its password is not rotated.
// The email being held by a non-admin account is a conflict.
func (a *authService) EnsureAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := a.users.GetUserByEmail(ctx, models.NormalizeEmail(req.Email))
	switch {
	case err == nil:
		if existing.Role != models.RoleAdmin {
			log.Error().Str("func", "authService.EnsureAdmin").Str("user_id", existing.ID).Msg("admin email belongs to a non-admin account")
			return models.User{}, ErrAdminEmailTaken
		}
		return existing, nil
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "authService.EnsureAdmin").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	req.Role = models.RoleAdmin
	return a.createUser(ctx, req)
}

func (a *authService) createUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.credentials.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.createUser").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		ID:           a.ids.Generate(),
		Name:         strings.TrimSpace(req.Name),
		Email:        models.NormalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		Class:        req.Class,
		Section:      req.Section,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == models.RoleStudent {
		user.StudentID = a.studentIDs.Generate(req.Class, req.Section)
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.createUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.createUser").Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates an existing user by email and password. An unknown
// email and a wrong password both yield ErrInvalidCredentials, and both
// pay for one credential check.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.credentials.Verify(req.Password, a.absentHash)
		log.Warn().Str("func", "authService.Login").Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.credentials.Verify(req.Password, user.PasswordHash) {
		log.Warn().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Me returns the account behind identity.
func (a *authService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	if identity.IsZero() {
		return models.User{}, ErrNoIdentity
	}
	return a.users.GetUserByID(ctx, identity.UserID)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's role, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("failed to create token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

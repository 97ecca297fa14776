package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

// authService is the concrete implementation of AuthService. Accounts live
// in the shared document store; passwords are stored as bcrypt hashes and
// sessions as HMAC-signed JWTs.
type authService struct {
	documents store.DocumentStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by the given document
// store and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(documents store.DocumentStore, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		documents:     documents,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser implements [AuthService].
func (s *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return models.User{}, fmt.Errorf("%w: email, password and name are required", ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           utils.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.documents.Update(ctx, func(doc *store.Document) error {
		if _, exists := doc.UserByEmail(req.Email); exists {
			return ErrEmailTaken
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))

	var user models.User
	err := s.documents.View(ctx, func(doc *store.Document) error {
		u, ok := doc.UserByEmail(email)
		if !ok {
			return ErrInvalidCredentials
		}
		user = u
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, creds.Password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}
	return token, nil
}

// GetUser implements [AuthService].
func (s *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.documents.View(ctx, func(doc *store.Document) error {
		u, ok := doc.UserByID(userID)
		if !ok {
			return ErrUserNotFound
		}
		user = u
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdatePreferences implements [AuthService].
func (s *authService) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (models.User, error) {
	var updated models.User
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == userID {
				doc.Users[i].Preferences = prefs
				updated = doc.Users[i]
				return nil
			}
		}
		return ErrUserNotFound
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

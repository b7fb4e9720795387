package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"meetup-planner/core/cache"
	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/core/utils"
	"meetup-planner/modules/auth/dto"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	GetAuthURL(ctx context.Context) (string, *errors.AppError)
	HandleCallback(ctx context.Context, code, state string) (*dto.LoginResponse, *errors.AppError)
}

type AuthService struct {
	provider Provider
	states   cache.Cache
	secret   string
	ttl      time.Duration
}

func NewAuthService(provider Provider, states cache.Cache, secret string, ttl time.Duration) AuthServiceInterface {
	return &AuthService{provider: provider, states: states, secret: secret, ttl: ttl}
}

// OwnerID derives a stable owner id from the provider identity, so the same
// account always maps to the same contacts and meetups.
func OwnerID(id *Identity) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id.Provider+":"+id.Subject)).String()
}

func stateKey(state string) string {
	return fmt.Sprintf(constants.RedisKeyOAuthState, state)
}

func (s *AuthService) GetAuthURL(ctx context.Context) (string, *errors.AppError) {
	state := utils.GenerateID()
	if err := s.states.SetJSON(ctx, stateKey(state), true, constants.OAuthStateTTL); err != nil {
		logger.Error("AuthService:GetAuthURL:SaveState", "error", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to start sign-in", err)
	}
	return s.provider.AuthCodeURL(state), nil
}

func (s *AuthService) HandleCallback(ctx context.Context, code, state string) (*dto.LoginResponse, *errors.AppError) {
	var ok bool
	if err := s.states.GetJSON(ctx, stateKey(state), &ok); err != nil {
		if stderrors.Is(err, cache.ErrMiss) {
			return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired sign-in state", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to validate sign-in state", err)
	}
	// one-time use
	if err := s.states.Delete(ctx, stateKey(state)); err != nil {
		logger.Warn("AuthService:HandleCallback:DeleteState", "error", err)
	}

	identity, err := s.provider.Identify(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleCallback:Identify", "error", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Sign-in with provider failed", err)
	}

	ownerID := OwnerID(identity)
	token, err := utils.GenerateToken(ownerID, s.secret, s.ttl)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	logger.Info("AuthService:HandleCallback:SignedIn", "owner_id", ownerID, "provider", identity.Provider)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		UserID:      ownerID,
		Email:       identity.Email,
		Name:        identity.Name,
	}, nil
}

package auth

import (
	"context"
	"fmt"
	"time"

	"labclinics-service/internal/app/config"
	"labclinics-service/internal/app/contracts"
	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
	"labclinics-service/internal/pkg/exceptions"
	"labclinics-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository  UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userRepository UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
	}
}

// LoginUser verifies the credentials, stores a session in redis for the
// configured lifetime and hands back a token carrying only the session ID.
// Unknown email and wrong password answer identically.
func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionLifetime := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID:   utils.GenerateSessionID(),
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		ExpiresAt:   time.Now().Add(sessionLifetime),
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	err = uc.RedisRepository.Set(ctx, sessionKey, session, sessionLifetime)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{Token: token}, nil
}

// LogoutUser invalidates the redis session so the token stops resolving even
// before its own expiry.
func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}

// GetSession mirrors the auth-state callback the admin panel subscribes to.
func (uc *authUsecase) GetSession(ctx context.Context, sessionData string) (*responses.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return &responses.Session{
		User: &responses.SessionUser{
			UserID:      session.UserID,
			Email:       session.Email,
			DisplayName: session.DisplayName,
		},
	}, nil
}

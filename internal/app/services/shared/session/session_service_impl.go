package session

import (
	"context"
	"fmt"

	"labclinics-service/internal/app/contracts"
	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	return session, nil
}

// GetSessionData resolves the raw session payload for a session ID. Expired
// sessions disappear from redis on their own, so a miss means not logged in.
func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	sessionData, err := s.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

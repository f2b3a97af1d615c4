package auth

import (
	"context"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
	GetSession(ctx context.Context, sessionData string) (*responses.Session, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
}

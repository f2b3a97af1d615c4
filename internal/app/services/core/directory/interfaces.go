package directory

import (
	"context"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
)

// DoctorProvider is the slice of the doctor repository this package reads
// from. It is satisfied by the mongo-backed repository wired in at startup.
type DoctorProvider interface {
	FindAll(ctx context.Context) ([]*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindBySlug(ctx context.Context, slug string) (*models.Doctor, error)
}

type DirectoryUsecase interface {
	ListDirectory(ctx context.Context, request *requests.DirectoryFilter) (*responses.DirectoryList, error)
	GetFilters(ctx context.Context) (*responses.DirectoryFilters, error)
	GetProfile(ctx context.Context, slug, doctorID string) (*responses.DoctorProfile, error)
}

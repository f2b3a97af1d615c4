package doctors

import (
	"context"
	"mime/multipart"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, request *requests.DirectoryFilter) (*responses.DoctorList, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.UpsertDoctor) (*responses.CreateDoctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpsertDoctor) error
	UpdateDoctorStatus(ctx context.Context, doctorID string, active bool) error
	DeleteDoctor(ctx context.Context, doctorID string) error
	UploadDoctorPhoto(ctx context.Context, doctorID string, fileHeader *multipart.FileHeader) (*responses.UploadDoctorPhoto, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindBySlug(ctx context.Context, slug string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, payload map[string]interface{}) (string, error)
	UpdateDoctor(ctx context.Context, doctorID string, payload map[string]interface{}) error
	DeleteDoctor(ctx context.Context, doctorID string) error
	WatchChanges(ctx context.Context) (<-chan struct{}, error)
}

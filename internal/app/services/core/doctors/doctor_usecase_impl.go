package doctors

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"labclinics-service/internal/app/contracts"
	"labclinics-service/internal/app/models"
	"labclinics-service/internal/app/services/core/directory"
	"labclinics-service/internal/app/services/shared/eventqueue"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
	"labclinics-service/internal/pkg/exceptions"
	"labclinics-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	Log              *zap.Logger
	DoctorRepository DoctorRepository
	Storage          contracts.Storage
	EventPublisher   contracts.DoctorEventPublisher
	PhotoBucketName  string
}

func NewDoctorUsecase(
	logger *zap.Logger,
	doctorRepository DoctorRepository,
	storage contracts.Storage,
	eventPublisher contracts.DoctorEventPublisher,
	photoBucketName string,
) DoctorUsecase {
	return &doctorUsecase{
		Log:              logger,
		DoctorRepository: doctorRepository,
		Storage:          storage,
		EventPublisher:   eventPublisher,
		PhotoBucketName:  photoBucketName,
	}
}

// ListDoctors backs the admin table. Every record is visible regardless of
// status; the status filter narrows on demand.
func (uc *doctorUsecase) ListDoctors(ctx context.Context, request *requests.DirectoryFilter) (*responses.DoctorList, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ordered := directory.ApplyBaseOrder(doctors)
	filtered := directory.Apply(ordered, directory.Params{
		Query:  request.Query,
		Status: request.Status,
		Scope:  directory.ScopeAdmin,
	})

	return &responses.DoctorList{
		Doctors:  filtered,
		Filtered: len(filtered),
		Total:    len(ordered),
		Status:   directory.Summarize(len(filtered), len(ordered), request.Query),
	}, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.UpsertDoctor) (*responses.CreateDoctor, error) {
	payload := BuildDoctorPayload(request)

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(eventqueue.ActionCreated, doctorID)
	return &responses.CreateDoctor{DoctorID: doctorID}, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpsertDoctor) error {
	err := uc.DoctorRepository.UpdateDoctor(ctx, doctorID, BuildDoctorPayload(request))
	if err != nil {
		return err
	}

	uc.publishEvent(eventqueue.ActionUpdated, doctorID)
	return nil
}

func (uc *doctorUsecase) UpdateDoctorStatus(ctx context.Context, doctorID string, active bool) error {
	err := uc.DoctorRepository.UpdateDoctor(ctx, doctorID, map[string]interface{}{"active": active})
	if err != nil {
		return err
	}

	uc.publishEvent(eventqueue.ActionUpdated, doctorID)
	return nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	err := uc.DoctorRepository.DeleteDoctor(ctx, doctorID)
	if err != nil {
		return err
	}

	uc.publishEvent(eventqueue.ActionDeleted, doctorID)
	return nil
}

// UploadDoctorPhoto stores the image and points the record at it. The stored
// object name is what the card's photo URL is rebuilt from on every read.
func (uc *doctorUsecase) UploadDoctorPhoto(ctx context.Context, doctorID string, fileHeader *multipart.FileHeader) (*responses.UploadDoctorPhoto, error) {
	doctor, err := uc.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	// Prefix with the slug so uploads for different doctors never collide.
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	baseName := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	fileHeader.Filename = doctor.Slug + "-" + utils.Slugify(baseName) + extension
	objectName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.PhotoBucketName)
	if err != nil {
		return nil, err
	}

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctorID, map[string]interface{}{"photoName": objectName})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(eventqueue.ActionUpdated, doctorID)
	return &responses.UploadDoctorPhoto{
		PhotoName: objectName,
		PhotoURL:  ResolvePhotoURL(objectName),
	}, nil
}

// publishEvent notifies downstream consumers without tying the write to the
// broker. Failures are logged and swallowed.
func (uc *doctorUsecase) publishEvent(action, doctorID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.EventPublisher.PublishDoctorEvent(ctx, action, doctorID); err != nil {
		uc.Log.Warn("failed to publish doctor event",
			zap.String("action", action),
			zap.String("doctor_id", doctorID),
			zap.Error(err),
		)
	}
}

package directory

import (
	"context"
	"net/http"
	"time"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
	"labclinics-service/internal/pkg/exceptions"
	"labclinics-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DirectoryController struct {
	Log               *zap.Logger
	DirectoryUsecase  DirectoryUsecase
	SnapshotHub       *SnapshotHub
	HeartbeatInterval time.Duration
}

func NewDirectoryController(
	log *zap.Logger,
	directoryUsecase DirectoryUsecase,
	snapshotHub *SnapshotHub,
	heartbeatInterval time.Duration,
) *DirectoryController {
	return &DirectoryController{
		Log:               log,
		DirectoryUsecase:  directoryUsecase,
		SnapshotHub:       snapshotHub,
		HeartbeatInterval: heartbeatInterval,
	}
}

func (ctrl *DirectoryController) ListDirectory(w http.ResponseWriter, r *http.Request) {
	request := &requests.DirectoryFilter{
		Query:     r.URL.Query().Get("q"),
		Specialty: r.URL.Query().Get("specialty"),
		Branch:    r.URL.Query().Get("branch"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DirectoryUsecase.ListDirectory(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DirectoryListSuccess, response)
}

func (ctrl *DirectoryController) GetFilters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DirectoryUsecase.GetFilters(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DirectoryFiltersSuccess, response)
}

func (ctrl *DirectoryController) GetProfile(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	doctorID := r.URL.Query().Get("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DirectoryUsecase.GetProfile(ctx, slug, doctorID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DirectoryProfileSuccess, response)
}

// StreamDirectory pushes the active slice of every collection snapshot so
// the public listing re-renders without polling.
func (ctrl *DirectoryController) StreamDirectory(w http.ResponseWriter, r *http.Request) {
	ServeSnapshotStream(w, r, ctrl.Log, ctrl.SnapshotHub, ctrl.HeartbeatInterval, publicProjection)
}

func publicProjection(doctors []*models.Doctor) interface{} {
	active := []*models.Doctor{}
	for _, doctor := range doctors {
		if doctor.Active {
			active = append(active, doctor)
		}
	}
	ordered := ApplyBaseOrder(active)
	return &responses.DirectoryList{
		Doctors:  ordered,
		Filtered: len(ordered),
		Total:    len(ordered),
		Status:   Summarize(len(ordered), len(ordered), ""),
	}
}

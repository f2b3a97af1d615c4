package directory

import (
	"context"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/dto/responses"
	"labclinics-service/internal/pkg/exceptions"
	"labclinics-service/internal/pkg/utils"
)

type directoryUsecase struct {
	DoctorProvider DoctorProvider
}

func NewDirectoryUsecase(doctorProvider DoctorProvider) DirectoryUsecase {
	return &directoryUsecase{
		DoctorProvider: doctorProvider,
	}
}

// ListDirectory serves the public listing. Only active profiles are visible;
// ordering and filtering follow the same engine the admin table uses, with
// the public search index.
func (uc *directoryUsecase) ListDirectory(ctx context.Context, request *requests.DirectoryFilter) (*responses.DirectoryList, error) {
	doctors, err := uc.activeDoctors(ctx)
	if err != nil {
		return nil, err
	}

	ordered := ApplyBaseOrder(doctors)
	filtered := Apply(ordered, Params{
		Query:     request.Query,
		Specialty: request.Specialty,
		Branch:    request.Branch,
		Scope:     ScopePublic,
	})

	return &responses.DirectoryList{
		Doctors:  filtered,
		Filtered: len(filtered),
		Total:    len(ordered),
		Status:   Summarize(len(filtered), len(ordered), request.Query),
	}, nil
}

// GetFilters returns the dropdown options, computed from active profiles so
// the public view never offers a filter that matches nothing visible.
func (uc *directoryUsecase) GetFilters(ctx context.Context) (*responses.DirectoryFilters, error) {
	doctors, err := uc.activeDoctors(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DirectoryFilters{
		Specialties: DistinctSpecialties(doctors),
		Branches:    DistinctBranches(doctors),
	}, nil
}

// GetProfile resolves a public detail page. The slug is the canonical
// identifier; the raw document ID is accepted as a fallback for old links.
// Inactive profiles resolve but answer 410 so the page can say the profile
// exists and is paused rather than showing a generic not-found.
func (uc *directoryUsecase) GetProfile(ctx context.Context, slug, doctorID string) (*responses.DoctorProfile, error) {
	if slug == "" && doctorID == "" {
		return nil, exceptions.ErrProfileIdentifierMissing(nil)
	}

	var doctor *models.Doctor
	var err error

	if slug != "" {
		doctor, err = uc.DoctorProvider.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
	}
	if doctor == nil && doctorID != "" {
		doctor, err = uc.DoctorProvider.FindByID(ctx, doctorID)
		if err != nil {
			return nil, err
		}
	}

	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if !doctor.Active {
		return nil, exceptions.ErrDoctorUnavailable(nil)
	}

	return &responses.DoctorProfile{
		Doctor:       doctor,
		TelLink:      utils.BuildTelLink(doctor.Phone),
		WhatsAppLink: utils.BuildWhatsAppLink(doctor.Phone),
	}, nil
}

func (uc *directoryUsecase) activeDoctors(ctx context.Context) ([]*models.Doctor, error) {
	doctors, err := uc.DoctorProvider.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := []*models.Doctor{}
	for _, doctor := range doctors {
		if doctor.Active {
			active = append(active, doctor)
		}
	}
	return active, nil
}

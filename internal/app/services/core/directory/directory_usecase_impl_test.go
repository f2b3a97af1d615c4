package directory

import (
	"context"
	"errors"
	"testing"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type stubDoctorProvider struct {
	doctors []*models.Doctor
	err     error
}

func (s *stubDoctorProvider) FindAll(ctx context.Context) ([]*models.Doctor, error) {
	return s.doctors, s.err
}

func (s *stubDoctorProvider) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, doctor := range s.doctors {
		if doctor.ID == doctorID {
			return doctor, nil
		}
	}
	return nil, nil
}

func (s *stubDoctorProvider) FindBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, doctor := range s.doctors {
		if doctor.Slug == slug {
			return doctor, nil
		}
	}
	return nil, nil
}

func TestListDirectory(t *testing.T) {
	provider := &stubDoctorProvider{doctors: []*models.Doctor{
		{ID: "1", FullName: "Ana Gómez", Slug: "ana-gomez", Active: true, Priority: 1},
		{ID: "2", FullName: "Beto Díaz", Slug: "beto-diaz", Active: false},
		{ID: "3", FullName: "Zoe Ruiz", Slug: "zoe-ruiz", Active: true},
	}}
	uc := NewDirectoryUsecase(provider)

	t.Run("hides inactive profiles and counts only visible ones", func(t *testing.T) {
		response, err := uc.ListDirectory(context.Background(), &requests.DirectoryFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, 2, response.Filtered)
		assert.Equal(t, "Ana Gómez", response.Doctors[0].FullName)
		assert.Equal(t, "Mostrando 2 profesionales.", response.Status)
	})

	t.Run("query narrows the list and shows up in the status line", func(t *testing.T) {
		response, err := uc.ListDirectory(context.Background(), &requests.DirectoryFilter{Query: "gomez"})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.Filtered)
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, "Mostrando 1 de 2 profesionales para “gomez”.", response.Status)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		failing := NewDirectoryUsecase(&stubDoctorProvider{err: errors.New("boom")})

		_, err := failing.ListDirectory(context.Background(), &requests.DirectoryFilter{})

		assert.Error(t, err)
	})
}

func TestGetProfile(t *testing.T) {
	provider := &stubDoctorProvider{doctors: []*models.Doctor{
		{ID: "1", FullName: "Ana Gómez", Slug: "ana-gomez", Phone: "+54 11 5555-0001", Active: true},
		{ID: "2", FullName: "Beto Díaz", Slug: "beto-diaz", Active: false},
	}}
	uc := NewDirectoryUsecase(provider)

	t.Run("resolves by slug and builds contact links", func(t *testing.T) {
		response, err := uc.GetProfile(context.Background(), "ana-gomez", "")

		assert.NoError(t, err)
		assert.Equal(t, "Ana Gómez", response.Doctor.FullName)
		assert.Equal(t, "tel:+541155550001", response.TelLink)
		assert.Equal(t, "https://wa.me/541155550001", response.WhatsAppLink)
	})

	t.Run("falls back to the document id", func(t *testing.T) {
		response, err := uc.GetProfile(context.Background(), "stale-slug", "1")

		assert.NoError(t, err)
		assert.Equal(t, "ana-gomez", response.Doctor.Slug)
	})

	t.Run("unknown profile answers not found", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "nadie", "")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("inactive profile answers gone", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "beto-diaz", "")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 410, customErr.StatusCode)
	})

	t.Run("missing identifiers answer bad request", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "", "")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestGetFilters(t *testing.T) {
	provider := &stubDoctorProvider{doctors: []*models.Doctor{
		{Specialties: []string{"Cardiología"}, Branch: "Centro", Active: true},
		{Specialties: []string{"cardiología", "Pediatría"}, Branch: "Norte", Active: true},
		{Specialties: []string{"Dermatología"}, Branch: "Sur", Active: false},
	}}
	uc := NewDirectoryUsecase(provider)

	response, err := uc.GetFilters(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Cardiología", "Pediatría"}, response.Specialties)
	assert.Equal(t, []string{"Centro", "Norte"}, response.Branches)
}

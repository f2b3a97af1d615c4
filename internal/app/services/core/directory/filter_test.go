package directory

import (
	"testing"

	"labclinics-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func buildDoctor(fullName string, priority int, active bool) *models.Doctor {
	return &models.Doctor{
		FullName: fullName,
		Priority: priority,
		Active:   active,
	}
}

func TestApplyBaseOrder(t *testing.T) {
	t.Run("orders by priority then collated name", func(t *testing.T) {
		doctors := []*models.Doctor{
			buildDoctor("Zoe", 0, true),
			buildDoctor("Ángel", 5, true),
			buildDoctor("Beto", 1, true),
			buildDoctor("Ana", 5, true),
		}

		ordered := ApplyBaseOrder(doctors)

		names := []string{}
		for _, doctor := range ordered {
			names = append(names, doctor.FullName)
		}
		assert.Equal(t, []string{"Ana", "Ángel", "Beto", "Zoe"}, names)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		doctors := []*models.Doctor{
			buildDoctor("Zoe", 0, true),
			buildDoctor("Ana", 5, true),
		}

		ApplyBaseOrder(doctors)

		assert.Equal(t, "Zoe", doctors[0].FullName)
	})
}

func TestApply(t *testing.T) {
	doctors := []*models.Doctor{
		{
			FullName:    "Ana Gómez",
			Profession:  "Cardióloga",
			Branch:      "Centro",
			Specialties: []string{"Cardiología"},
			Treatments:  []string{"Ecocardiograma"},
			Email:       "ana@example.com",
			Phone:       "+54 11 5555-0001",
			Slug:        "ana-gomez",
			Active:      true,
		},
		{
			FullName:    "Beto Díaz",
			Profession:  "Kinesiólogo",
			Branch:      "Norte",
			Specialties: []string{"Kinesiología"},
			Treatments:  []string{"Rehabilitación"},
			Email:       "beto@example.com",
			Slug:        "beto-diaz",
			Active:      false,
		},
	}

	t.Run("query is diacritic and case insensitive", func(t *testing.T) {
		filtered := Apply(doctors, Params{Query: "GÓMEZ", Scope: ScopePublic})

		assert.Len(t, filtered, 1)
		assert.Equal(t, "Ana Gómez", filtered[0].FullName)
	})

	t.Run("specialty match is exact", func(t *testing.T) {
		assert.Len(t, Apply(doctors, Params{Specialty: "Cardiología"}), 1)
		assert.Empty(t, Apply(doctors, Params{Specialty: "cardiologia"}))
	})

	t.Run("branch match is normalized equality", func(t *testing.T) {
		filtered := Apply(doctors, Params{Branch: "NORTE"})

		assert.Len(t, filtered, 1)
		assert.Equal(t, "Beto Díaz", filtered[0].FullName)
	})

	t.Run("status narrows by active flag", func(t *testing.T) {
		assert.Len(t, Apply(doctors, Params{Status: "active"}), 1)
		assert.Len(t, Apply(doctors, Params{Status: "inactive"}), 1)
		assert.Len(t, Apply(doctors, Params{Status: "all"}), 2)
		assert.Len(t, Apply(doctors, Params{}), 2)
	})

	t.Run("admin scope matches contact data", func(t *testing.T) {
		assert.Len(t, Apply(doctors, Params{Query: "beto@example.com", Scope: ScopeAdmin}), 1)
		assert.Empty(t, Apply(doctors, Params{Query: "beto@example.com", Scope: ScopePublic}))
	})

	t.Run("public scope matches treatments", func(t *testing.T) {
		assert.Len(t, Apply(doctors, Params{Query: "rehabilitacion", Scope: ScopePublic}), 1)
		assert.Empty(t, Apply(doctors, Params{Query: "rehabilitacion", Scope: ScopeAdmin}))
	})

	t.Run("blank query matches everything", func(t *testing.T) {
		assert.Len(t, Apply(doctors, Params{Query: "   "}), 2)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, "Aún no hay profesionales cargados.", Summarize(0, 0, ""))
	})

	t.Run("unfiltered collection", func(t *testing.T) {
		assert.Equal(t, "Mostrando 3 profesionales.", Summarize(3, 3, ""))
		assert.Equal(t, "Mostrando 1 profesional.", Summarize(1, 1, ""))
	})

	t.Run("filtered collection with query", func(t *testing.T) {
		assert.Equal(t, "Mostrando 1 de 5 profesionales para “cardio”.", Summarize(1, 5, "cardio"))
	})

	t.Run("filtered collection without query", func(t *testing.T) {
		assert.Equal(t, "Mostrando 2 de 5 profesionales.", Summarize(2, 5, ""))
	})

	t.Run("full match with query still reports the query", func(t *testing.T) {
		assert.Equal(t, "Mostrando 3 de 3 profesionales para “ana”.", Summarize(3, 3, "ana"))
	})
}

func TestDistinctValues(t *testing.T) {
	doctors := []*models.Doctor{
		{Specialties: []string{"Cardiología", "Clínica"}, Branch: "Centro"},
		{Specialties: []string{"cardiología"}, Branch: "centro"},
		{Specialty: "Pediatría", Branch: "Norte"},
	}

	t.Run("specialties dedupe accent and case insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"Cardiología", "Clínica", "Pediatría"}, DistinctSpecialties(doctors))
	})

	t.Run("legacy singular field feeds the list when the plural is absent", func(t *testing.T) {
		assert.Contains(t, DistinctSpecialties(doctors), "Pediatría")
	})

	t.Run("branches keep the first spelling seen", func(t *testing.T) {
		assert.Equal(t, []string{"Centro", "Norte"}, DistinctBranches(doctors))
	})
}

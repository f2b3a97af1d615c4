package doctors

import (
	"testing"

	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(value bool) *bool {
	return &value
}

func TestMapDoctorDocument(t *testing.T) {
	t.Run("derives full name, clean phone, photo url and slug", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"_id":       primitive.NewObjectID(),
			"firstName": "  Ana   María ",
			"lastName":  " Gómez ",
			"phone":     "+54 (11) 5555-0001",
			"photoName": "ana.jpg",
		})

		assert.Equal(t, "Ana María Gómez", doctor.FullName)
		assert.Equal(t, "+541155550001", doctor.CleanPhone)
		assert.Equal(t, "assets/doctors/ana.jpg", doctor.PhotoURL)
		assert.Equal(t, "ana-maria-gomez", doctor.Slug)
		assert.NotEmpty(t, doctor.ID)
	})

	t.Run("stored slug wins over the derived one", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"firstName": "Ana",
			"lastName":  "Gómez",
			"slug":      "dra-ana",
		})

		assert.Equal(t, "dra-ana", doctor.Slug)
	})

	t.Run("missing photo falls back to the placeholder", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{})

		assert.Equal(t, "assets/placeholders/doctor.png", doctor.PhotoURL)
	})

	t.Run("legacy singular specialty feeds the list", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialty": "Cardiología",
		})

		assert.Equal(t, []string{"Cardiología"}, doctor.Specialties)
		assert.Equal(t, "Cardiología", doctor.Specialty)
	})

	t.Run("blank specialties string falls back to the singular", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialties": "  ",
			"specialty":   "Cardiología",
		})

		assert.Equal(t, []string{"Cardiología"}, doctor.Specialties)
	})

	t.Run("empty specialties list does not fall back", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialties": []interface{}{},
			"specialty":   "Cardiología",
		})

		assert.Empty(t, doctor.Specialties)
	})

	t.Run("singular specialty backfills from the list", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialties": []interface{}{"Cardiología", "Clínica"},
		})

		assert.Equal(t, "Cardiología", doctor.Specialty)
	})

	t.Run("driver list type parses like a plain list", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialties": primitive.A{" Cardiología ", "", "Clínica"},
		})

		assert.Equal(t, []string{"Cardiología", "Clínica"}, doctor.Specialties)
	})

	t.Run("comma separated specialties split", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"specialties": "Cardiología, Clínica",
		})

		assert.Equal(t, []string{"Cardiología", "Clínica"}, doctor.Specialties)
	})

	t.Run("active defaults to true and preserves stored false", func(t *testing.T) {
		assert.True(t, MapDoctorDocument(map[string]interface{}{}).Active)
		assert.False(t, MapDoctorDocument(map[string]interface{}{"active": false}).Active)
	})

	t.Run("non numeric priority degrades to zero", func(t *testing.T) {
		assert.Equal(t, 0, MapDoctorDocument(map[string]interface{}{"priority": "alta"}).Priority)
		assert.Equal(t, 5, MapDoctorDocument(map[string]interface{}{"priority": int32(5)}).Priority)
		assert.Equal(t, 3, MapDoctorDocument(map[string]interface{}{"priority": 3.0}).Priority)
	})

	t.Run("social drops empty links", func(t *testing.T) {
		doctor := MapDoctorDocument(map[string]interface{}{
			"social": map[string]interface{}{
				"instagram": "https://instagram.com/dra.ana",
				"x":         "",
			},
		})

		assert.Equal(t, map[string]string{"instagram": "https://instagram.com/dra.ana"}, doctor.Social)
	})

	t.Run("mapping is idempotent over its own output", func(t *testing.T) {
		first := MapDoctorDocument(map[string]interface{}{
			"firstName": "José",
			"lastName":  "Pérez",
			"phone":     "+54 11 5555-0002",
		})

		second := MapDoctorDocument(map[string]interface{}{
			"firstName": first.FirstName,
			"lastName":  first.LastName,
			"phone":     first.Phone,
			"slug":      first.Slug,
		})

		assert.Equal(t, first.FullName, second.FullName)
		assert.Equal(t, first.CleanPhone, second.CleanPhone)
		assert.Equal(t, first.Slug, second.Slug)
	})
}

func TestBuildDoctorPayload(t *testing.T) {
	t.Run("full form submission", func(t *testing.T) {
		request := &requests.UpsertDoctor{
			FirstName:   "  Ana ",
			LastName:    " Gómez ",
			Phone:       "+54 (11) 5555-0001",
			Profession:  "Médica",
			Specialties: "Cardiología, Clínica",
			MapURL:      "maps.example.com/centro",
			Social: map[string]string{
				"instagram": "instagram.com/dra.ana",
				"x":         " ",
				"myspace":   "myspace.com/ana",
			},
			Active:   boolPtr(true),
			Priority: "7",
		}
		utils.SanitizeUpsertDoctorRequest(request)

		payload := BuildDoctorPayload(request)

		assert.Equal(t, "Ana", payload["firstName"])
		assert.Equal(t, "Gómez", payload["lastName"])
		assert.Equal(t, "ana-gomez", payload["slug"])
		assert.Equal(t, []string{"Cardiología", "Clínica"}, payload["specialties"])
		assert.Equal(t, "Cardiología", payload["specialty"])
		assert.Equal(t, "https://maps.example.com/centro", payload["mapUrl"])
		assert.Equal(t, 7, payload["priority"])

		social, ok := payload["social"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "https://instagram.com/dra.ana", social["instagram"])
		assert.NotContains(t, social, "x")
		assert.NotContains(t, social, "myspace")
	})

	t.Run("derived fields are never stored", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{
			FirstName: "Ana",
			LastName:  "Gómez",
		})

		assert.NotContains(t, payload, "fullName")
		assert.NotContains(t, payload, "cleanPhone")
		assert.NotContains(t, payload, "photoUrl")
	})

	t.Run("absent active defaults to true, explicit false survives cleaning", func(t *testing.T) {
		assert.Equal(t, true, BuildDoctorPayload(&requests.UpsertDoctor{})["active"])
		assert.Equal(t, false, BuildDoctorPayload(&requests.UpsertDoctor{Active: boolPtr(false)})["active"])
	})

	t.Run("zero priority survives cleaning", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{})

		assert.Equal(t, 0, payload["priority"])
	})

	t.Run("empty fields are dropped from the payload", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{FirstName: "Ana"})

		assert.NotContains(t, payload, "about")
		assert.NotContains(t, payload, "treatments")
		assert.NotContains(t, payload, "social")
	})

	t.Run("singular specialty fills the list when no list is sent", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{Specialty: "Pediatría"})

		assert.Equal(t, []string{"Pediatría"}, payload["specialties"])
		assert.Equal(t, "Pediatría", payload["specialty"])
	})

	t.Run("blank specialties string falls back to the singular", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{
			Specialties: " ",
			Specialty:   "Pediatría",
		})

		assert.Equal(t, []string{"Pediatría"}, payload["specialties"])
	})

	t.Run("empty specialties list does not fall back", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{
			Specialties: []interface{}{},
			Specialty:   "Pediatría",
		})

		assert.NotContains(t, payload, "specialties")
		assert.NotContains(t, payload, "specialty")
	})

	t.Run("explicit slug is kept", func(t *testing.T) {
		payload := BuildDoctorPayload(&requests.UpsertDoctor{
			FirstName: "Ana",
			LastName:  "Gómez",
			Slug:      "dra-ana",
		})

		assert.Equal(t, "dra-ana", payload["slug"])
	})
}

func TestResolvePhotoURL(t *testing.T) {
	assert.Equal(t, "assets/doctors/ana.jpg", ResolvePhotoURL("ana.jpg"))
	assert.Equal(t, "assets/doctors/ana.jpg", ResolvePhotoURL("  ana.jpg  "))
	assert.Equal(t, "assets/placeholders/doctor.png", ResolvePhotoURL(""))
	assert.Equal(t, "assets/placeholders/doctor.png", ResolvePhotoURL("   "))
}

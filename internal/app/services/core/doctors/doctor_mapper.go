package doctors

import (
	"strings"
	"time"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapDoctorDocument normalizes a raw stored document into the canonical
// record. It never fails: missing or malformed fields fall back to their
// defaults so one bad legacy document cannot break a listing.
func MapDoctorDocument(document map[string]interface{}) *models.Doctor {
	firstName := utils.CoerceString(document["firstName"])
	lastName := utils.CoerceString(document["lastName"])
	phone := utils.CoerceString(document["phone"])
	photoName := utils.CoerceString(document["photoName"])

	specialtiesRaw := document["specialties"]
	if isAbsentList(specialtiesRaw) {
		specialtiesRaw = document["specialty"]
	}
	specialties := utils.EnsureList(rawValue(specialtiesRaw))

	specialty := utils.CoerceString(document["specialty"])
	if specialty == "" && len(specialties) > 0 {
		specialty = specialties[0]
	}

	slug := utils.CoerceString(document["slug"])
	if slug == "" {
		slug = utils.Slugify(firstName + "-" + lastName)
	}

	return &models.Doctor{
		ID:          documentID(document["_id"]),
		FirstName:   firstName,
		LastName:    lastName,
		FullName:    utils.FormatFullName(firstName, lastName),
		Phone:       phone,
		CleanPhone:  utils.CleanPhone(phone),
		Profession:  utils.CoerceString(document["profession"]),
		Specialty:   specialty,
		Specialties: specialties,
		Treatments:  utils.EnsureList(rawValue(document["treatments"])),
		Address:     utils.CoerceString(document["address"]),
		Branch:      utils.CoerceString(document["branch"]),
		Email:       utils.CoerceString(document["email"]),
		MapURL:      utils.CoerceString(document["mapUrl"]),
		About:       utils.CoerceString(document["about"]),
		Social:      socialMap(document["social"]),
		PhotoName:   photoName,
		PhotoURL:    ResolvePhotoURL(photoName),
		Slug:        slug,
		Active:      utils.CoerceBool(document["active"], true),
		Priority:    utils.CoercePriority(document["priority"]),
		Tags:        utils.EnsureList(rawValue(document["tags"])),
		TimeModel: models.TimeModel{
			CreatedAt: documentTime(document["createdAt"]),
			UpdatedAt: documentTime(document["updatedAt"]),
		},
	}
}

// BuildDoctorPayload turns an admin form submission into the storage
// payload. The request must be sanitized first. Derived fields are never
// stored; the legacy singular specialty is kept in sync with the list so
// older readers keep working.
func BuildDoctorPayload(request *requests.UpsertDoctor) map[string]interface{} {
	specialtiesRaw := request.Specialties
	if isAbsentList(specialtiesRaw) {
		specialtiesRaw = request.Specialty
	}
	specialties := utils.EnsureList(specialtiesRaw)

	specialty := ""
	if len(specialties) > 0 {
		specialty = specialties[0]
	}

	slug := request.Slug
	if slug == "" {
		slug = utils.Slugify(request.FirstName + "-" + request.LastName)
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	payload := map[string]interface{}{
		"firstName":   request.FirstName,
		"lastName":    request.LastName,
		"phone":       request.Phone,
		"profession":  request.Profession,
		"specialty":   specialty,
		"specialties": specialties,
		"treatments":  utils.EnsureList(request.Treatments),
		"address":     request.Address,
		"branch":      request.Branch,
		"email":       request.Email,
		"mapUrl":      utils.SanitizeURL(request.MapURL),
		"about":       request.About,
		"social":      normalizeSocial(request.Social),
		"photoName":   request.PhotoName,
		"slug":        slug,
		"active":      active,
		"priority":    utils.CoercePriority(request.Priority),
		"tags":        utils.EnsureList(request.Tags),
	}
	return utils.CleanDocument(payload)
}

// ResolvePhotoURL maps the stored photo name to the asset the card shows,
// or the shared placeholder when no photo was uploaded.
func ResolvePhotoURL(photoName string) string {
	photoName = strings.TrimSpace(photoName)
	if photoName == "" {
		return constvars.DoctorPhotoPlaceholder
	}
	return constvars.DoctorAssetsPrefix + photoName
}

// normalizeSocial keeps only the supported networks, sanitizes each link
// and drops the ones left empty.
func normalizeSocial(social map[string]string) map[string]interface{} {
	normalized := map[string]interface{}{}
	for _, key := range constvars.DoctorSocialKeys {
		link := utils.SanitizeURL(social[key])
		if link != "" {
			normalized[key] = link
		}
	}
	return normalized
}

// isAbsentList reports whether a loosely typed list field carries no value
// at all. A blank string counts as absent so the legacy singular field can
// take over; an empty list does not, it means "no specialties" on purpose.
func isAbsentList(value interface{}) bool {
	if value == nil {
		return true
	}
	if typed, ok := value.(string); ok {
		return strings.TrimSpace(typed) == ""
	}
	return false
}

// rawValue unwraps the driver list type so the parsing helpers stay free of
// storage concerns.
func rawValue(value interface{}) interface{} {
	if list, ok := value.(primitive.A); ok {
		return []interface{}(list)
	}
	return value
}

func documentID(value interface{}) string {
	switch typed := value.(type) {
	case primitive.ObjectID:
		return typed.Hex()
	case string:
		return typed
	default:
		return ""
	}
}

func documentTime(value interface{}) time.Time {
	switch typed := value.(type) {
	case primitive.DateTime:
		return typed.Time()
	case time.Time:
		return typed
	default:
		return time.Time{}
	}
}

func socialMap(value interface{}) map[string]string {
	raw, ok := value.(map[string]interface{})
	if !ok {
		if typed, okTyped := value.(primitive.M); okTyped {
			raw = map[string]interface{}(typed)
		} else {
			return map[string]string{}
		}
	}

	social := map[string]string{}
	for key, item := range raw {
		link := utils.CoerceString(item)
		if link != "" {
			social[key] = link
		}
	}
	return social
}

package responses

import "labclinics-service/internal/app/models"

type DirectoryList struct {
	Doctors  []*models.Doctor `json:"doctors"`
	Filtered int              `json:"filtered"`
	Total    int              `json:"total"`
	Status   string           `json:"status"`
}

// DirectoryFilters feeds the public filter dropdowns.
type DirectoryFilters struct {
	Specialties []string `json:"specialties"`
	Branches    []string `json:"branches"`
}

// DoctorProfile is the public detail page payload, including the contact
// links the card renders.
type DoctorProfile struct {
	Doctor       *models.Doctor `json:"doctor"`
	TelLink      string         `json:"telLink"`
	WhatsAppLink string         `json:"whatsAppLink"`
}

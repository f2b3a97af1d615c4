package responses

import "labclinics-service/internal/app/models"

// DoctorList is the admin table payload: the filtered set, the counts the
// status line is built from, and the status line itself.
type DoctorList struct {
	Doctors  []*models.Doctor `json:"doctors"`
	Filtered int              `json:"filtered"`
	Total    int              `json:"total"`
	Status   string           `json:"status"`
}

type CreateDoctor struct {
	DoctorID string `json:"doctorId"`
}

type UploadDoctorPhoto struct {
	PhotoName string `json:"photoName"`
	PhotoURL  string `json:"photoUrl"`
}

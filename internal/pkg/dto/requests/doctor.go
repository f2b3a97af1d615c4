package requests

// UpsertDoctor carries the admin form submission for create and update.
// Specialties, Treatments, Tags and Priority stay loosely typed because the
// form may submit either a comma-separated string or a proper list, and a
// priority that is not a number degrades to 0 instead of rejecting the save.
type UpsertDoctor struct {
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Phone       string            `json:"phone"`
	Profession  string            `json:"profession"`
	Specialty   string            `json:"specialty"`
	Specialties interface{}       `json:"specialties"`
	Treatments  interface{}       `json:"treatments"`
	Address     string            `json:"address"`
	Branch      string            `json:"branch"`
	Email       string            `json:"email" validate:"omitempty,email"`
	MapURL      string            `json:"mapUrl"`
	About       string            `json:"about"`
	Social      map[string]string `json:"social"`
	PhotoName   string            `json:"photoName"`
	Slug        string            `json:"slug"`
	Priority    interface{}       `json:"priority"`
	Active      *bool             `json:"active"`
	Tags        interface{}       `json:"tags"`
}

type UpdateDoctorStatus struct {
	Active *bool `json:"active" validate:"required"`
}

type DirectoryFilter struct {
	Query     string `json:"q"`
	Specialty string `json:"specialty"`
	Branch    string `json:"branch"`
	Status    string `json:"status" validate:"doctor_status"`
}

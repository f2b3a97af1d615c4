package models

// Doctor is the canonical in-memory record every view works with. The
// derived fields (FullName, CleanPhone, PhotoURL) are recomputed from their
// sources on every read and never written back to storage.
type Doctor struct {
	ID         string            `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName  string            `json:"firstName" bson:"firstName"`
	LastName   string            `json:"lastName" bson:"lastName"`
	FullName   string            `json:"fullName" bson:"-"`
	Phone      string            `json:"phone" bson:"phone"`
	CleanPhone string            `json:"cleanPhone" bson:"-"`
	Profession string            `json:"profession" bson:"profession"`
	// Specialty is the legacy singular field. It is synchronized to
	// Specialties[0] on every write and only consulted on read as a
	// fallback source when the list is absent.
	Specialty   string            `json:"specialty" bson:"specialty"`
	Specialties []string          `json:"specialties" bson:"specialties"`
	Treatments  []string          `json:"treatments" bson:"treatments"`
	Address     string            `json:"address" bson:"address"`
	Branch      string            `json:"branch" bson:"branch"`
	Email       string            `json:"email" bson:"email"`
	MapURL      string            `json:"mapUrl" bson:"mapUrl"`
	About       string            `json:"about" bson:"about"`
	Social      map[string]string `json:"social" bson:"social"`
	PhotoName   string            `json:"photoName" bson:"photoName"`
	PhotoURL    string            `json:"photoUrl" bson:"-"`
	Slug        string            `json:"slug" bson:"slug"`
	Active      bool              `json:"active" bson:"active"`
	Priority    int               `json:"priority" bson:"priority"`
	Tags        []string          `json:"tags,omitempty" bson:"tags,omitempty"`
	TimeModel   `bson:",inline"`
}

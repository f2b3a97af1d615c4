package constvars

const (
	ResponseSuccess = "success"
	ResponseUnknown = "unknown"
)

const (
	LoginSuccess   = "successfully login"
	LogoutSuccess  = "successfully logout"
	SessionSuccess = "get session successfully"

	DoctorCreatedSuccess     = "doctor created successfully"
	DoctorUpdatedSuccess     = "doctor updated successfully"
	DoctorDeletedSuccess     = "doctor deleted successfully"
	DoctorGetSuccess         = "get doctor successfully"
	DoctorListSuccess        = "get doctors successfully"
	DoctorStatusSuccess      = "doctor status updated successfully"
	DoctorPhotoUploadSuccess = "doctor photo uploaded successfully"

	DirectoryListSuccess    = "get directory successfully"
	DirectoryFiltersSuccess = "get directory filters successfully"
	DirectoryProfileSuccess = "get profile successfully"
)

// Status line wording shown by both the admin table and the public listing.
// Kept in Spanish, exactly as the site displays it.
const (
	DirectoryStatusEmpty          = "Aún no hay profesionales cargados."
	DirectoryStatusAllFormat      = "Mostrando %d profesional%s."
	DirectoryStatusFilteredFormat = "Mostrando %d de %d profesional%s%s."
	DirectoryStatusQueryFormat    = " para “%s”"
)

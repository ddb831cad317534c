package constvars

const (
	CreateBookingSuccessMessage       = "Successfully created booking"
	GetBookingSuccessMessage          = "Successfully retrieved booking"
	UpdateBookingStatusSuccessMessage = "Successfully updated booking status"
	GetConsultantSuccessMessage       = "Successfully retrieved consultant"

	ResponseUnknown = "unknown"
)

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"oneof":        "must be one of: %s",
	"session_mode": "must be one of: online, offline",
	"package_kind": "must be one of: session, week, month, custom-package",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

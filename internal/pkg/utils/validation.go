package utils

import (
	"fitbook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("session_mode", validateSessionMode)
	validate.RegisterValidation("package_kind", validatePackageKind)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSessionMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SessionModeOnline || value == constvars.SessionModeOffline
}

func validatePackageKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case constvars.PackageKindSession, constvars.PackageKindWeek, constvars.PackageKindMonth, constvars.PackageKindCustom:
		return true
	}
	return false
}

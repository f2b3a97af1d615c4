package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("doctor_status", validateDoctorStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDoctorStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == "all" || value == "active" || value == "inactive"
}

// File: utils/validation.go
package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"courtshare/services/availability"
)

// RegisterValidators installs the custom binding validators used by the
// request structs. Call once at startup, before the router is built.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("date_ymd", validateDateYMD)
	_ = v.RegisterValidation("clock_time", validateClockTime)
}

// validateDateYMD accepts calendar dates in YYYY-MM-DD form.
func validateDateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateClockTime accepts any start time the normalizer understands,
// 24-hour or 12-hour.
func validateClockTime(fl validator.FieldLevel) bool {
	_, err := availability.NormalizeTime(fl.Field().String())
	return err == nil
}

package validation

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const isoDateLayout = "2006-01-02"

var registerOnce sync.Once

// Register installs the custom binding tags on gin's validator. Safe to call repeatedly.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("isodate", isoDate)
	})
	return err
}

// isoDate accepts calendar dates in YYYY-MM-DD form only.
func isoDate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func IsISODate(s string) bool {
	if len(s) != len(isoDateLayout) {
		return false
	}
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}

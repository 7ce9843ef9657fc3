package validators

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var once sync.Once

// Register adds the "date" (YYYY-MM-DD) and "hhmm" (HH:MM) tags to gin's
// validator. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("date", IsDate)
		_ = v.RegisterValidation("hhmm", IsTimeOfDay)
	})
}

func IsDate(fl validator.FieldLevel) bool {
	_, err := timezone.ParseDate(fl.Field().String())
	return err == nil
}

func IsTimeOfDay(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != len(timezone.TimeLayout) {
		return false
	}
	_, err := timezone.ParseTimeOfDay(s)
	return err == nil
}

package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type slot struct {
	Date string `binding:"required,date"`
	Time string `binding:"required,hhmm"`
}

func TestRegisteredTags(t *testing.T) {
	Register()
	Register()

	assert.NoError(t, binding.Validator.ValidateStruct(slot{Date: "2024-05-01", Time: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(slot{Date: "2024-02-30", Time: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(slot{Date: "01/05/2024", Time: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(slot{Date: "2024-05-01", Time: "9:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(slot{Date: "2024-05-01", Time: "24:00"}))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow(Window{Day: time.Monday, Start: "09:00", End: "12:00"}))

	cases := map[string]Window{
		"invalid_day":        {Day: 7, Start: "09:00", End: "12:00"},
		"invalid_start_time": {Day: time.Monday, Start: "9am", End: "12:00"},
		"invalid_end_time":   {Day: time.Monday, Start: "09:00", End: "noon"},
		"invalid_time_range": {Day: time.Monday, Start: "12:00", End: "12:00"},
	}
	for code, w := range cases {
		err := ValidateWindow(w)
		assert.True(t, httperr.IsBusiness(err, code), code)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), code)
	}
}

func TestCovers(t *testing.T) {
	windows := []models.Schedule{
		{Day: int(time.Monday), StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		{Day: int(time.Monday), StartTime: "14:00", EndTime: "18:00", IsAvailable: false},
		{Day: int(time.Tuesday), StartTime: "08:00", EndTime: "10:00", IsAvailable: true},
	}

	assert.True(t, Covers(windows, time.Monday, "09:00"))
	assert.True(t, Covers(windows, time.Monday, "11:59"))
	assert.False(t, Covers(windows, time.Monday, "12:00"))
	assert.False(t, Covers(windows, time.Monday, "15:00"), "unavailable window")
	assert.False(t, Covers(windows, time.Wednesday, "09:00"))
	assert.True(t, Covers(windows, time.Tuesday, "08:00"))
	assert.False(t, Covers(windows, time.Tuesday, "bogus"))
	assert.False(t, Covers(nil, time.Tuesday, "08:00"))
}

package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// ======================================================
// BOOKINGS
// ======================================================

type CreateBookingRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required,date"`
	Day      *int   `json:"day" binding:"omitempty,min=0,max=6"`
	Time     string `json:"time" binding:"required,hhmm"`
}

type UpdateBookingRequest struct {
	Date string `json:"date" binding:"required,date"`
	Day  *int   `json:"day" binding:"omitempty,min=0,max=6"`
	Time string `json:"time" binding:"required,hhmm"`
}

type CompleteBookingRequest struct {
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
}

type BookingResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// ======================================================
// SCHEDULES
// ======================================================

type ScheduleRequest struct {
	Day         *int   `json:"day" binding:"required,min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required,hhmm"`
	EndTime     string `json:"end_time" binding:"required,hhmm"`
	IsAvailable *bool  `json:"is_available"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

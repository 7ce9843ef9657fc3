package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	engine *ucBooking.Engine
}

func NewBookingHandler(engine *ucBooking.Engine) *BookingHandler {
	return &BookingHandler{engine: engine}
}

func respond(c *gin.Context, message string, b *models.Booking) {
	httpresp.OK(c, dto.BookingResponse{Message: message, Booking: b})
}

// ======================================================
// SHARED READS (doctor or patient, scoped by caller)
// ======================================================

// List handles GET .../bookings?status=
func (h *BookingHandler) List(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	bookings, err := h.engine.Queries.List(c.Request.Context(), caller, c.Query("status"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.engine.Queries.Get(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// DOCTOR
// ======================================================

func (h *BookingHandler) Today(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	summary, err := h.engine.Queries.TodaySummary(c.Request.Context(), caller)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, summary)
}

func (h *BookingHandler) Counts(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	counts, err := h.engine.Queries.CountByStatus(c.Request.Context(), caller)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, counts)
}

// ByInspectionNumber handles GET .../inspection/:number?date=YYYY-MM-DD
func (h *BookingHandler) ByInspectionNumber(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		httperr.BadRequest(c, "invalid_inspection_number", "Inspection number must be an integer.")
		return
	}

	b, err := h.engine.Queries.GetByInspectionNumber(c.Request.Context(), caller, number, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.engine.Confirm.Execute(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond(c, "Booking confirmed.", b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.engine.Cancel.Execute(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond(c, "Booking cancelled.", b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Diagnosis is required.")
		return
	}

	b, err := h.engine.Complete.Execute(c.Request.Context(), caller, id, ucBooking.CompleteBookingInput{
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond(c, "Booking completed.", b)
}

// ======================================================
// PATIENT
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "doctor_id, date (YYYY-MM-DD) and time (HH:MM) are required.")
		return
	}

	b, err := h.engine.Create.Execute(c.Request.Context(), caller, ucBooking.CreateBookingInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Day:      req.Day,
		Time:     req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.BookingResponse{Message: "Booking created.", Booking: b})
}

func (h *BookingHandler) Update(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date (YYYY-MM-DD) and time (HH:MM) are required.")
		return
	}

	b, err := h.engine.PatientUpdate.Execute(c.Request.Context(), caller, id, ucBooking.PatientUpdateInput{
		Date: req.Date,
		Day:  req.Day,
		Time: req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond(c, "Booking updated.", b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.engine.PatientDelete.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.MessageResponse{Message: "Booking deleted."})
}

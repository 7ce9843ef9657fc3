package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	list   *ucSchedule.ListSchedules
	create *ucSchedule.CreateSchedule
	update *ucSchedule.UpdateSchedule
	delete *ucSchedule.DeleteSchedule
}

func NewScheduleHandler(
	list *ucSchedule.ListSchedules,
	create *ucSchedule.CreateSchedule,
	update *ucSchedule.UpdateSchedule,
	delete *ucSchedule.DeleteSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		list:   list,
		create: create,
		update: update,
		delete: delete,
	}
}

func toInput(req dto.ScheduleRequest) ucSchedule.Input {
	return ucSchedule.Input{
		Day:         *req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}
}

// ListMine handles GET /api/doctor/schedules
func (h *ScheduleHandler) ListMine(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	schedules, err := h.list.Execute(c.Request.Context(), caller.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, schedules)
}

// ListForDoctor handles the public GET /api/doctors/:id/schedules
func (h *ScheduleHandler) ListForDoctor(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	schedules, err := h.list.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "day (0-6), start_time and end_time (HH:MM) are required.")
		return
	}

	s, err := h.create.Execute(c.Request.Context(), caller, toInput(req))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "day (0-6), start_time and end_time (HH:MM) are required.")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), caller, id, toInput(req))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.MessageResponse{Message: "Schedule deleted."})
}

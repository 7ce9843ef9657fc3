package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Directory reads doctor and patient profiles.
type Directory interface {
	GetDoctor(ctx context.Context, doctorID uint) (*models.Doctor, error)
	GetPatient(ctx context.Context, patientID uint) (*models.Patient, error)
}

type MeHandler struct {
	directory Directory
}

func NewMeHandler(directory Directory) *MeHandler {
	return &MeHandler{directory: directory}
}

// GetMe returns the caller's identity and, for doctors and patients, the
// directory profile.
func (h *MeHandler) GetMe(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var (
		profile any
		err     error
	)

	switch caller.Role {
	case identity.RoleDoctor:
		profile, err = h.directory.GetDoctor(c.Request.Context(), caller.ID)
	case identity.RolePatient:
		profile, err = h.directory.GetPatient(c.Request.Context(), caller.ID)
	}

	if errors.Is(err, booking.ErrRecordNotFound) {
		httperr.NotFound(c, "profile_not_found", "Profile not found.")
		return
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"caller": gin.H{
			"id":   caller.ID,
			"role": caller.Role,
			"name": caller.Name,
		},
		"profile": profile,
	})
}

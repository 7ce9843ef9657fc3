package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucNotification "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/notification"
)

type NotificationHandler struct {
	inbox *ucNotification.Inbox
}

func NewNotificationHandler(inbox *ucNotification.Inbox) *NotificationHandler {
	return &NotificationHandler{inbox: inbox}
}

// List handles GET /api/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))

	items, err := h.inbox.ListMine(c.Request.Context(), caller, unreadOnly)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	n, err := h.inbox.MarkRead(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, n)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.inbox.Delete(c.Request.Context(), caller, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.MessageResponse{Message: "Notification deleted."})
}

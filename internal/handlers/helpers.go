package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

// callerOrAbort writes 401 when AuthMiddleware did not run.
func callerOrAbort(c *gin.Context) (identity.CallerContext, bool) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Authentication required.")
		return identity.CallerContext{}, false
	}
	return caller, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(v), true
}

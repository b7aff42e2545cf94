package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus a store connectivity probe. Always 200;
// a dead store shows up in the body, not the status code.
func (ctl *Controller) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	dbStatus := "connected"
	if _, err := ctl.DB.Get(ctx); err != nil {
		dbStatus = "unreachable: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"db":     dbStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

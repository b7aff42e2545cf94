package controllers

import (
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
)

// ListRemoteOrders proxies the remote service's order list without
// persisting it. A dead remote degrades the same way a dead store
// does: 200 with demo records and the error under dbError.
func (ctl *Controller) ListRemoteOrders(c *gin.Context) {
	orders, err := ctl.Remote.FetchOrders(c.Request.Context())
	if err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoCustomerOrders()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

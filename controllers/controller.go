package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"backend/api"
	"backend/config"
	"backend/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Controller carries the gateway's two dependencies: the store
// provider and the remote commerce service client.
type Controller struct {
	DB     config.Provider
	Remote *api.Client
}

func New(db config.Provider, remote *api.Client) *Controller {
	return &Controller{DB: db, Remote: remote}
}

const requestTimeout = 15 * time.Second

func (ctl *Controller) database(c *gin.Context) (*mongo.Database, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	db, err := ctl.DB.Get(ctx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return db, ctx, cancel, nil
}

// demoFallback answers a degraded read: HTTP 200 with synthetic data
// so the dashboard never has to branch on transport failure. The
// captured error travels along under dbError.
func demoFallback(c *gin.Context, err error, payload gin.H) {
	log.Printf("degraded read %s: %v", c.Request.URL.Path, err)
	middleware.DegradedReadsTotal.WithLabelValues(c.Request.URL.Path).Inc()
	payload["demo"] = true
	payload["dbError"] = err.Error()
	c.JSON(http.StatusOK, payload)
}

// writeFailure answers a failed write: silent data loss is worse than
// a visible error, so writes never degrade.
func writeFailure(c *gin.Context, message string, err error) {
	log.Printf("write failed %s: %v", c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

// pageParams reads 1-indexed pagination, tolerating garbage the same
// way the rest of the gateway does: bad input means defaults.
func pageParams(c *gin.Context) (page, limit int64) {
	page = 1
	limit = 50
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

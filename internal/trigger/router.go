// Package trigger exposes the inbound HTTP surface that starts benchmark
// runs: a thin validation layer between raw requests and the scheduler core.
package trigger

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/orchbench/orchbench/internal/common/logging"
	"github.com/orchbench/orchbench/internal/common/util"
	"github.com/orchbench/orchbench/internal/loadtest"
)

// Server wires HTTP requests to the scheduler. Submit is the execution engine
// collaborator every started run fans out to.
type Server struct {
	Submit loadtest.SubmitFunc
	// Concurrency bound applied to every run started through this server.
	ConcurrencyLimit int
	Clock            util.Clock
}

func NewServer(submit loadtest.SubmitFunc, concurrencyLimit int) *Server {
	return &Server{
		Submit:           submit,
		ConcurrencyLimit: concurrencyLimit,
		Clock:            &util.DefaultClock{},
	}
}

func NewRouter(server *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/start", server.StartHandler)

	return r
}

// StartHandler validates the raw count and prefix parameters and starts one
// benchmark run. Invalid count values are the caller's error and map to 400;
// the scheduler core only ever sees validated input.
func (s *Server) StartHandler(c *gin.Context) {
	rawCount := c.Query("count")
	if rawCount == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'count' is required"})
		return
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil || count < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'count' must be a positive integer"})
		return
	}

	prefix := loadtest.RunPrefix(c.Query("prefix"), s.Clock.Now())

	outcome, err := loadtest.Schedule(c.Request.Context(), count, s.ConcurrencyLimit, prefix, s.Submit)
	if err != nil {
		logging.WithStacktrace(log.NewEntry(log.StandardLogger()), err).Error("failed to schedule run")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if outcome.Failed > 0 {
		log.Warnf("%d of %d submissions failed, first failure at index %d: %v",
			outcome.Failed, outcome.Submitted, outcome.FirstFailedIndex, outcome.FirstError)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     outcome.String(),
		"prefix":      outcome.Prefix,
		"submitted":   outcome.Submitted,
		"failed":      outcome.Failed,
		"unattempted": outcome.Unattempted,
	})
}

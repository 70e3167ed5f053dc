package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler answers the liveness probe: a 200 means the process is
// up, nothing more.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// StorePinger is implemented by the blob store.
type StorePinger interface {
	Ping(ctx context.Context) error
}

type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

// ReadinessHandler answers the readiness probe by pinging MongoDB, Redis
// and the blob store. Any failing dependency degrades the response to 503
// so the orchestrator stops routing traffic here.
type ReadinessHandler struct {
	checks []dependencyCheck
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client, media StorePinger) *ReadinessHandler {
	return &ReadinessHandler{checks: []dependencyCheck{
		{name: "mongodb", ping: func(ctx context.Context) error { return db.Client().Ping(ctx, nil) }},
		{name: "redis", ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		{name: "media_store", ping: media.Ping},
	}}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	healthy := true
	for _, check := range h.checks {
		if err := check.ping(ctx); err != nil {
			deps[check.name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[check.name] = dependencyStatus{Status: "ok"}
	}

	status, httpStatus := "ok", http.StatusOK
	if !healthy {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
}

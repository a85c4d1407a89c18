package health

import (
	"context"
	"net/http"
	"time"

	"github.com/mager/woodshed/util"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the server and its database are reachable.
type HealthHandler struct {
	log *zap.SugaredLogger
	db  Pinger
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

func (*HealthHandler) Method() string {
	return http.MethodGet
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, db Pinger) *HealthHandler {
	return &HealthHandler{
		log: log,
		db:  db,
	}
}

type Response struct {
	Server   bool `json:"server"`
	Database bool `json:"database"`
}

// Health check
// @Summary Health check
// @Description Reports server and database status
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{Server: true}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Errorw("Database ping failed", "error", err)
		status = http.StatusServiceUnavailable
	} else {
		resp.Database = true
	}

	h.log.Infow("health check", "database", resp.Database)
	util.WriteJSON(w, h.log, status, resp)
}

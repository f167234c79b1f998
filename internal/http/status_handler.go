package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"wellness-coach/internal/config"
	"wellness-coach/internal/db"
)

// StatusHandler mantiene dependencias para los endpoints de diagnóstico.
type StatusHandler struct {
	logger *zap.Logger
	cfg    *config.Config
	pool   *pgxpool.Pool // puede ser nil si no hay DATABASE_URL
}

// NewStatusHandler crea una instancia de StatusHandler.
func NewStatusHandler(logger *zap.Logger, cfg *config.Config, pool *pgxpool.Pool) *StatusHandler {
	return &StatusHandler{
		logger: logger,
		cfg:    cfg,
		pool:   pool,
	}
}

// Root maneja GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the Wellness Coach backend!"})
}

// Hello maneja GET /api/hello.
func (h *StatusHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase maneja GET /test: reporta disponibilidad de la base de datos.
// El chat no depende de la base; este endpoint existe solo para diagnóstico.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	report := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
	}

	if h.cfg.DatabaseURL != "" {
		report["database_url"] = "✅ Set"
	}
	if h.cfg.DatabaseName != "" {
		report["database_name"] = "✅ Set"
	}

	if h.pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx, h.pool); err != nil {
			h.logger.Warn("database ping failed", zap.Error(err))
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			report["database"] = "⚠️  Connected but Error: " + msg
		} else {
			report["database"] = "✅ Connected & Working"
			report["connection_status"] = "Connected"
		}
	}

	c.JSON(http.StatusOK, report)
}

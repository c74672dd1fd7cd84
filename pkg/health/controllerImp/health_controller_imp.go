package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agroadvisor/pkg/model"
)

var appStart = time.Now()

type HealthCtrl struct {
	db       *gorm.DB
	datasets map[string]string
}

// NewHealthCtrl checks the database and every named dataset file.
func NewHealthCtrl(db *gorm.DB, datasets map[string]string) *HealthCtrl {
	return &HealthCtrl{db: db, datasets: datasets}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]check{"database": h.database(ctx)}
	for name, path := range h.datasets {
		ch := check{OK: true}
		if _, err := model.Version(path); err != nil {
			ch = check{Err: err.Error()}
		}
		checks["dataset_"+name] = ch
	}

	allOK := true
	for _, ch := range checks {
		allOK = allOK && ch.OK
	}
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) database(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

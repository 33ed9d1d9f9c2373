package services

import (
	"fmt"
	"net"

	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	DatabaseHost string            `json:"databaseHost,omitempty"`
	Counts       *Counts           `json:"counts,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

func (r *HealthCheckResult) fail(format string, args ...any) {
	r.Status = "unhealthy"
	msg := fmt.Sprintf(format, args...)
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage += "; " + msg
	}
	logrus.WithField("component", "health").Warn("Health check failed - " + msg)
}

// HealthCheck checks the database handle, the database host and reads the collection counts
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check the server is reachable before asking the pool
	if !config.IsSQLite(cfg.DBType) {
		address := net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		if err := utils.PingDatabase(cfg.DBHost, cfg.DBPort); err != nil {
			result.DatabaseHost = "unreachable"
			result.Details["database_host_error"] = err.Error()
			result.fail("database host %s unreachable: %v", address, err)
		} else {
			result.DatabaseHost = "ok"
			result.Details["database_host"] = address
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.fail("database connection error: %v", err)
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.fail("database ping failed: %v", err)
		return result
	}
	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase

	counts, err := CountAll(db)
	if err != nil {
		result.Details["count_error"] = err.Error()
		result.fail("counting collections failed: %v", err)
		return result
	}
	result.Counts = &counts

	if result.Healthy() {
		logrus.WithField("component", "health").Debug("Health check passed - all systems operational")
	}

	return result
}

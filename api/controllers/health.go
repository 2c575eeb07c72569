package controllers

import (
	"net/http"

	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/pkg/config"
	"github.com/avtomir/avtomir-backend/pkg/db"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Avtomir-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports dependency state. The catalog intentionally
// survives a dead database, so a failing ping degrades the payload
// without failing the check.
func HealthReady(cfg *config.Config, dbClient *db.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Avtomir-Env", cfg.App.Env)

		database := "ok"
		if dbClient == nil {
			database = "not configured"
		} else if err := dbClient.Ping(r.Context()); err != nil {
			database = "unreachable"
		}

		responses.WriteSuccess(w, map[string]string{
			"status":   "ready",
			"database": database,
		})
	}
}

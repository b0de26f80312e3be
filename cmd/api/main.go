package main

import (
	"context"
	"net/http"
	"os"
	"time"

	_ "pet-adoption-api/docs"
	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"
)

// @title Pet Adoption Platform API
// @version 1.0
// @description REST backend para la plataforma de adopción: mascotas, solicitudes de adopción, campañas de donación y usuarios/roles.
// @BasePath /api
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var opts router.Options
	opts.Logger = log

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := postgres.Open(dsn)
		if err != nil {
			// DSN inválido: se loguea y se sigue sirviendo en modo degradado
			// (las operaciones contra el store responderán 500).
			log.Error("store open failed, serving degraded", map[string]any{"error": err.Error()})
		} else {
			opts.DB = db

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := db.PingContext(ctx); err != nil {
				// Store caído al arrancar: el proceso no se cae; el pool
				// reconecta solo cuando el store vuelva.
				log.Error("store unreachable, serving degraded", map[string]any{"error": err.Error()})
			} else if err := postgres.Migrate(db); err != nil {
				log.Error("migrations failed, serving degraded", map[string]any{"error": err.Error()})
			}
			cancel()
		}
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

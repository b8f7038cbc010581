package main

import (
	"log"
	"time"

	"pizzeria_admin_go/api"
	"pizzeria_admin_go/config"
	"pizzeria_admin_go/handlers"
	"pizzeria_admin_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	registry := services.NewRegistry(api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout))

	// The login wall is only up when an admin credential is configured;
	// local development runs open.
	var sessions *services.SessionStore
	if cfg.AdminPasswordHash != "" {
		sessions = services.NewSessionStore(cfg.SessionTTL)
	} else {
		log.Println("ADMIN_PASSWORD_HASH not set, running without authentication")
	}

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Static("/static", "static")

	h := handlers.New(cfg, registry, sessions)
	h.Register(e)

	// Periodic cleanup of expired login sessions and idle editors.
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if sessions != nil {
				if n := sessions.CleanupExpired(); n > 0 {
					log.Printf("Cleaned up %d expired sessions", n)
				}
			}
			if n := h.FormSessions().CleanupExpired(); n > 0 {
				log.Printf("Cleaned up %d idle editors", n)
			}
		}
	}()

	log.Printf("Admin UI listening on :%s (API at %s)", cfg.ServerPort, cfg.APIBaseURL)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

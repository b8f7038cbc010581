package main

import (
	"log"

	"pizzeria_admin_go/backend"
	"pizzeria_admin_go/config"
	"pizzeria_admin_go/db"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// The stub back office: the JSON API the admin UI talks to, kept runnable
// for development and integration tests.
func main() {
	cfg := config.Load()

	conn, err := db.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close(conn)

	if err := backend.Migrate(conn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := backend.Seed(conn); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	backend.Register(e, conn)

	log.Printf("Back office API listening on :%s (db %s)", cfg.BackendPort, cfg.DBPath)
	if err := e.Start(":" + cfg.BackendPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

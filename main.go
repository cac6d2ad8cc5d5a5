package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"littlelemon/configs"
	"littlelemon/routes"
	"littlelemon/ws"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := configs.LoadConfig()

	if err := configs.ConnectDatabase(cfg); err != nil {
		slog.Error("database connect failed", "err", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(); err != nil {
		slog.Error("migration failed", "err", err)
		os.Exit(1)
	}
	if err := configs.SeedAdmin(); err != nil {
		slog.Error("seed admin failed", "err", err)
		os.Exit(1)
	}
	if err := configs.SeedMenu(); err != nil {
		slog.Error("seed menu failed", "err", err)
		os.Exit(1)
	}

	// Live order feed
	hub := ws.NewOrderHub()
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"

	"hestia-console-be/internal/bootstrap"
	"hestia-console-be/internal/config"
	"hestia-console-be/internal/server"
	"hestia-console-be/internal/tracer"
	"hestia-console-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}

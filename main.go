package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/theoMich19/delivecrous/configs"
	"github.com/theoMich19/delivecrous/middlewares"
	"github.com/theoMich19/delivecrous/pkg/logger"
	"github.com/theoMich19/delivecrous/routes"
)

func main() {
	cfg := configs.LoadConfig()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatal("connect database failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedCatalog(db); err != nil {
		log.Fatal("seed catalog failed", zap.Error(err))
	}

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"MealGo-Backend/cmd/config"
	migration "MealGo-Backend/cmd/database/migrate"
	"MealGo-Backend/internal/utils"
	"MealGo-Backend/internal/utils/logger"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "drop every table before migrating")
	flag.Parse()

	utils.LoadConfig()
	logger.InitializeLogger(utils.IsProduction())
	defer logger.Close()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if *reset {
		if err := migration.Reset(db); err != nil {
			logger.Fatal("failed to reset database", zap.Error(err))
		}
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app, err := config.NewApp(db)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	port := utils.GetConfig("APP_PORT")
	logger.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

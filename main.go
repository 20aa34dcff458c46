package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrstyler/internal/handlers"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	h, err := handlers.New(logger)
	if err != nil {
		logger.Fatal("handler init failed", zap.Error(err))
	}

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
	}
	r.GET("/healthz", h.Healthz)

	addr := getAddr()
	logger.Info("qrstyler listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func getAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

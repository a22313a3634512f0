package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lostfound/internal/config"
	"lostfound/internal/database"
	"lostfound/internal/domain/notify"
	"lostfound/internal/domain/report"
	"lostfound/internal/domain/upload"
	"lostfound/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := report.Migrate(db); err != nil {
		log.Fatal("failed to migrate schema: ", err)
	}

	sink := upload.NewSink(cfg.UploadDir)
	hub := notify.NewHub()

	reportRepo := report.NewRepository(db)
	reportService := report.NewService(reportRepo, sink, hub)
	reportHandler := report.NewHandler(reportService)
	notifyHandler := notify.NewHandler(hub)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		report.RegisterRoutes(api, reportHandler)
		notify.RegisterRoutes(api, notifyHandler)
	}

	// Uploaded images and the static board client
	r.Static(upload.URLPrefix, sink.Dir())
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/script.js", "./web/script.js")
	r.StaticFile("/styles.css", "./web/styles.css")

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 Not Found")
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the store.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("shutdown error:", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

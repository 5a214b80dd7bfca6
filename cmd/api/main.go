package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/smartq-app/booking-api/internal/config"
	dbpkg "github.com/smartq-app/booking-api/internal/db"
	"github.com/smartq-app/booking-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, running without availability cache: %v", err)
			rdb = nil
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	deps := routes.RegisterRoutes(r, db, rdb, cfg)

	// Pending-payment reaper: abandoned reservations go back to available.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			n, err := deps.Release.Execute(context.Background(), time.Now())
			if err != nil {
				log.Printf("release expired reservations: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("released %d expired pending reservations", n)
			}
		}
	}()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

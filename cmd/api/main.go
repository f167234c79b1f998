package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"wellness-coach/internal/config"
	"wellness-coach/internal/db"
	apihttp "wellness-coach/internal/http"
	"wellness-coach/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.OptionalPool(ctx, cfg)
	if err != nil {
		logger.Warn("db connect failed, diagnostics will report unavailable", zap.Error(err))
	}
	if pool != nil {
		defer pool.Close()
	}

	var limiter service.RateLimiter
	if cfg.ChatRateMax > 0 {
		window := time.Duration(cfg.ChatRateWindowSeconds) * time.Second
		limiter = service.NewChatRateLimiter(window, cfg.ChatRateMax)
		if cfg.RedisAddr != "" {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := redisClient.Ping(ctxPing).Err(); err != nil {
				logger.Warn("redis ping failed, using in-memory limiter", zap.Error(err))
			} else {
				limiter = service.NewRedisChatRateLimiter(redisClient, window, cfg.ChatRateMax)
			}
			cancel()
		}
	}

	chatHandler := apihttp.NewChatHandler(logger, service.Advisor{})
	statusHandler := apihttp.NewStatusHandler(logger, cfg, pool)
	router := apihttp.NewRouter(logger, chatHandler, statusHandler, limiter)

	// CORS abierto, igual que el frontend original espera.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

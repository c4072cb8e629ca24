package main

import (
	"log"

	"anoa.com/binbeacon/internal/bootstrap"
	"anoa.com/binbeacon/internal/config"
	"anoa.com/binbeacon/internal/server"
	"anoa.com/binbeacon/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedTrainingModules(db); err != nil {
		log.Fatalf("failed to seed training modules: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoUsers(db); err != nil {
			log.Fatalf("failed to seed demo users: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, running without redis: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
		}
	} else {
		log.Println("REDIS_URL not set, chat and broadcast fan-out disabled")
	}

	srv := server.NewServer(db, redisClient)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

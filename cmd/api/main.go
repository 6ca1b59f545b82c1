package main

import (
	"context"
	"log"

	"github.com/pitwall-dev/portfolio-backend/config"
	"github.com/pitwall-dev/portfolio-backend/internal/auth"
	"github.com/pitwall-dev/portfolio-backend/internal/bootstrap"
	"github.com/pitwall-dev/portfolio-backend/internal/keepalive"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	verifier, err := auth.NewJWKSVerifier(ctx, cfg.Supabase.JWKSURL)
	if err != nil {
		log.Fatalf("auth verifier: %v", err)
	}

	scheduler := keepalive.NewScheduler(db)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "portfolio-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DB:             db,
		Redis:          rdb,
		AuthClient:     auth.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey),
		Verifier:       verifier,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

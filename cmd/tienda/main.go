package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tienda/internal/auth"
	"tienda/internal/config"
	"tienda/internal/db"
	httpx "tienda/internal/http"
	"tienda/internal/product"
	"tienda/internal/report"
	"tienda/internal/user"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	userRepo := user.NewGormRepository(gdb)

	r := httpx.NewRouter(cfg, httpx.Deps{
		Users:    &user.Service{Repo: userRepo},
		UserRepo: userRepo,
		Products: product.NewGormRepository(gdb),
		JWT:      jwtSvc,
		Reports:  report.PDF{},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("stopped")
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"npv-engine/internal/cache"
	"npv-engine/internal/config"
	"npv-engine/internal/handler"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON calculation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				printError(cmd.ErrOrStderr(), "loading config", err)
				return err
			}
			return serve(cfg)
		},
	}
}

// newCache builds the configured result cache. It returns nil when caching
// is disabled.
func newCache(cfg *config.Config) (cache.Repository, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemory(), func() {}, nil
	case config.CacheRedis:
		rc := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.TTL.Duration)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, nil, fmt.Errorf("redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		return rc, func() { rc.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

func serve(cfg *config.Config) error {
	repo, closeCache, err := newCache(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	h := handler.New(repo)
	server := &fasthttp.Server{
		Handler:      h.Route,
		Name:         "npvcalc",
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("NPV engine starting on %s (cache: %s)", cfg.Addr(), cfg.Cache.Backend)
		if err := server.ListenAndServe(cfg.Addr()); err != nil {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	if err := server.Shutdown(); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server exited")
	return nil
}

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

	"github.com/aaronzipp/player-compare/internal/catalog"
	"github.com/aaronzipp/player-compare/internal/config"
	"github.com/aaronzipp/player-compare/internal/handlers"
	"github.com/aaronzipp/player-compare/internal/share"
	"github.com/aaronzipp/player-compare/internal/sse"
	"github.com/aaronzipp/player-compare/internal/store"
	"github.com/aaronzipp/player-compare/internal/web"
)

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func main() {
	cfg := config.Load()
	if cfg.Debug {
		log.Printf("Debug mode: catalog=%q assets=%q sessions=%d", cfg.CatalogPath, cfg.AssetsDir, cfg.SessionCapacity)
	}

	players, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	sessions, err := store.NewSessionStore(cfg.SessionCapacity, store.WithEvictHook(sse.Evicted))
	if err != nil {
		log.Fatal(err)
	}

	qr, err := share.NewQRCache(cfg.QRSize, cfg.QRCacheSize)
	if err != nil {
		log.Fatal(err)
	}

	ctx := &handlers.Context{
		Sessions:  sessions,
		Catalog:   players,
		Templates: tmpl,
		QR:        qr,
		BaseURL:   cfg.BaseURL,
	}

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: ctx.Routes(handlers.RouteOptions{
			AssetsDir:      cfg.AssetsDir,
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		// No WriteTimeout: SSE streams stay open for the life of the page.
	}

	go func() {
		log.Printf("Server starting on %s (%d players, base %s)", cfg.Addr, players.Len(), cfg.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

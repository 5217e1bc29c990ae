package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/munhozvinicius/divinomaravilhoso/internal/config"
	"github.com/munhozvinicius/divinomaravilhoso/internal/database"
	"github.com/munhozvinicius/divinomaravilhoso/internal/handler"
	"github.com/munhozvinicius/divinomaravilhoso/internal/middleware"
	"github.com/munhozvinicius/divinomaravilhoso/internal/queue"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/router"
	"github.com/munhozvinicius/divinomaravilhoso/internal/setlist"
	"github.com/munhozvinicius/divinomaravilhoso/internal/shop"
	"github.com/munhozvinicius/divinomaravilhoso/internal/storycard"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	// The database is optional: without it the site stays up in degraded
	// mode, serving the static pages and empty listings while refusing
	// writes. A nil *sql.DB flows into the repositories, which implement
	// that policy.
	var db *sql.DB
	if cfg.HasDatabase() {
		var err error
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Bootstrap(ctx, db); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("schema bootstrap failed")
		}
		cancel()
	} else {
		log.Warn().Msg("database not configured, running in degraded mode")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, response caching disabled")
	}

	go queue.StartOrderConsumer(cfg.AMQPURL)

	eventRepo := repository.NewEventRepo(db)
	productRepo := repository.NewProductRepo(db)
	socialRepo := repository.NewSocialRepo(db)
	setlistRepo := repository.NewSetlistRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	newsletterRepo := repository.NewNewsletterRepo(db)

	cards := storycard.NewRenderer(filepath.Join(cfg.PublicDir, "assets", "fonts"))

	h := router.Handlers{
		Events:   &handler.EventHandler{Repo: eventRepo, Cards: cards},
		Products: &handler.ProductHandler{Repo: productRepo},
		Social:   &handler.SocialHandler{Repo: socialRepo},
		Setlist: &handler.SetlistHandler{
			Repo:    setlistRepo,
			Service: setlist.NewService(setlistRepo),
		},
		Orders: &handler.OrderHandler{
			Pricer: shop.NewPricer(productRepo),
			Orders: orderRepo,
			Publish: func(ctx context.Context, ev queue.OrderPlacedEvent) error {
				return queue.PublishOrderPlaced(ctx, cfg.AMQPURL, ev)
			},
		},
		Newsletter: &handler.NewsletterHandler{Repo: newsletterRepo},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	router.Register(e, h, cache, cfg.PublicDir)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	if db != nil {
		_ = db.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info().Msg("bye")
}

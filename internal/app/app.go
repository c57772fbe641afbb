package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"jsonviews/config"
	"jsonviews/internal/adapter/in/web"
	"jsonviews/internal/adapter/out/placeholder"
	"jsonviews/internal/adapter/out/storage/inmemory"
	"jsonviews/internal/service"
	"jsonviews/pkg/logger"
)

const pruneInterval = time.Minute

type App struct {
	cfg      config.Config
	srv      *http.Server
	sessions *inmemory.SessionStorage
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	api, err := placeholder.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
	if err != nil {
		return nil, fmt.Errorf("placeholder client: %w", err)
	}

	sessions := inmemory.NewSessionStorage()

	userSvc := service.NewUserService(api, sessions)
	postSvc := service.NewPostService(api, sessions,
		service.WithPostsLimit(cfg.Posts.Limit),
		service.WithPostUserID(cfg.Posts.UserID),
	)

	h, err := web.NewHandler(userSvc, postSvc)
	if err != nil {
		return nil, fmt.Errorf("web handler: %w", err)
	}

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		BaseContext:       func(_ net.Listener) context.Context { return logger.WithLogger(context.Background(), log) },
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "api", cfg.API.BaseURL, "posts_limit", cfg.Posts.Limit)
	return &App{cfg: cfg, srv: srv, sessions: sessions}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	go a.pruneSessions(ctx)

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.srv.Shutdown(shCtx)

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) pruneSessions(ctx context.Context) {
	log := logger.FromContext(ctx)

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := a.sessions.PruneSessions(ctx, now.Add(-a.cfg.Sessions.TTL))
			if err != nil {
				log.Error("error pruning sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Debug("sessions pruned", "count", n, "left", a.sessions.Len())
			}
		}
	}
}

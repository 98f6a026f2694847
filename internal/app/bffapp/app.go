package bffapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/CePseudoBE/taxcalc/internal/config"
	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/infra/httpclient"
	authsvc "github.com/CePseudoBE/taxcalc/internal/services/auth"
	"github.com/CePseudoBE/taxcalc/internal/session"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	httpRouter http.Handler
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	sessionManager, err := session.NewManager(session.Config{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("init session manager: %w", err)
	}

	backendClient := backend.NewClient(cfg.Backend.BaseURL, httpclient.New(cfg.Backend.Timeout))
	authService := authsvc.NewService(backendClient)

	RegisterRoutes(r, Dependencies{
		SessionManager: sessionManager,
		Backend:        backendClient,
		AuthService:    authService,
		Logger:         log,
		Config:         cfg,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("bff server started",
		zap.String("addr", a.cfg.HTTP.Addr),
		zap.String("backend", a.cfg.Backend.BaseURL),
	)
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}

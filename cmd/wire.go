package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bnema/skycircle/internal/adapters/appview"
	sqlitehistory "github.com/bnema/skycircle/internal/adapters/history/sqlite"
	"github.com/bnema/skycircle/internal/adapters/identity"
	"github.com/bnema/skycircle/internal/adapters/render/ranking"
	"github.com/bnema/skycircle/internal/adapters/repo/car"
	tomlrepo "github.com/bnema/skycircle/internal/adapters/repo/toml"
	chainstore "github.com/bnema/skycircle/internal/adapters/secrets/chain"
	filestore "github.com/bnema/skycircle/internal/adapters/secrets/file"
	"github.com/bnema/skycircle/internal/adapters/sessionstore"
	"github.com/bnema/skycircle/internal/adapters/xrpc"
	"github.com/bnema/skycircle/internal/application"
	"github.com/bnema/skycircle/internal/config"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/bnema/skycircle/internal/rate"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	pds             xrpc.Client
	sessions        ports.SessionStore
	packs           ports.PackRepository
	history         *sqlitehistory.Store
	auth            *application.AuthService
	analysis        *application.AnalysisService
	rankingRenderer func(domain.AnalysisRun, ranking.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	packs, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire pack repository: %w", err)
	}

	secretStore, err := newSecretStore(cfg)
	if err != nil {
		return nil, err
	}
	sessions := sessionstore.NewFallback(sessionstore.NewSecretStore(secretStore), logger)

	history, err := sqlitehistory.Open(cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("wire run history: %w", err)
	}

	appView := xrpc.Client{Host: cfg.Service.AppView, HTTPClient: httpClient}
	pds := xrpc.Client{Host: cfg.Service.PDS, HTTPClient: httpClient}
	resolver := identity.NewResolver(appView, cfg.Service.PLC, httpClient)

	cache := application.NewRepositoryCache(
		car.Downloader{Resolver: resolver, HTTPClient: httpClient, MaxBytes: cfg.MaxRepoBytes},
		car.Classifier{Logger: logger},
	)
	profiles := application.ProfileResolver{
		Source:  appview.Client{XRPC: appView},
		Limiter: rate.NewInterval(cfg.BatchDelay),
		Logger:  logger,
	}

	return &app{
		cfg:             cfg,
		logger:          logger,
		pds:             pds,
		sessions:        sessions,
		packs:           packs,
		history:         history,
		auth:            application.NewAuthService(xrpc.SessionService{Client: pds}, sessions),
		analysis:        application.NewAnalysisService(resolver, cache, profiles, history, ports.SystemClock{}, logger),
		rankingRenderer: ranking.Render,
	}, nil
}

// publishService binds the stored session to an authenticated client.
// Renewed sessions are written back to the session store.
func (a *app) publishService(ctx context.Context) (*application.PublishService, error) {
	session, err := a.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	client := xrpc.NewAuthenticatedClient(a.pds, session, nil)
	client.OnSessionUpdate = func(renewed domain.Session) {
		if err := a.auth.Remember(context.WithoutCancel(ctx), renewed); err != nil {
			a.logger.Warn("could not persist renewed session", "did", renewed.DID, "err", err)
		}
	}

	publisher := application.Publisher{
		Limiter: rate.NewInterval(a.cfg.BatchDelay),
		Logger:  a.logger,
		WebURL:  a.cfg.Service.Web,
	}

	return application.NewPublishService(publisher, client, a.packs, a.sessions, a.history, a.analysis), nil
}

func newSecretStore(cfg config.Config) (ports.SecretStore, error) {
	if cfg.SecretsBackend == "file" {
		return filestore.NewStore(cfg.SecretsRoot), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsRoot, cfg.PassDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}
	return store, nil
}

func (a *app) close() error {
	if a.history == nil {
		return nil
	}
	return a.history.Close()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

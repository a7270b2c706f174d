package cmd

import (
	"fmt"
	"io"
	"time"

	authadapter "github.com/bnema/chatline/internal/adapters/auth"
	"github.com/bnema/chatline/internal/adapters/channel"
	statusadapter "github.com/bnema/chatline/internal/adapters/render/status"
	tomlrepo "github.com/bnema/chatline/internal/adapters/repo/toml"
	chainstore "github.com/bnema/chatline/internal/adapters/secrets/chain"
	filestore "github.com/bnema/chatline/internal/adapters/secrets/file"
	passstore "github.com/bnema/chatline/internal/adapters/secrets/pass"
	"github.com/bnema/chatline/internal/application"
	"github.com/bnema/chatline/internal/config"
	"github.com/bnema/chatline/internal/domain"
	"github.com/bnema/chatline/internal/logging"
	"github.com/bnema/chatline/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const envFile = ".env"

type app struct {
	cfg            config.Config
	logger         zerolog.Logger
	credentials    *application.CredentialManager
	navigator      *application.Navigator
	channel        channel.Options
	statusRenderer func(application.SessionStatus, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(config.Options{EnvFile: envFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logOutput, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	secretStore, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	profiles, err := tomlrepo.NewProfileRepository(cfg.ProfilePath())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	httpClient := authadapter.NewHTTPClient()
	headers := authadapter.NewHeaders()
	client := &authadapter.Client{
		API:            authadapter.DefaultAPI(cfg.Server.BaseURL),
		HTTPClient:     httpClient,
		Headers:        headers,
		RequestTimeout: cfg.Auth.RequestTimeout,
	}

	credentials := application.NewCredentialManager(client, secretStore, profiles, headers, application.CredentialManagerConfig{
		Policy:    domain.RevalidationPolicy(cfg.Auth.Revalidate),
		Inspector: authadapter.NewClaimsInspector(),
		Clock:     ports.SystemClock{},
		Logger:    logger,
	})

	return &app{
		cfg:         cfg,
		logger:      logger,
		credentials: credentials,
		navigator:   application.NewNavigator(credentials, domain.DefaultRoutes()),
		channel: channel.Options{
			URL:       cfg.Server.WSURL,
			Capacity:  cfg.Channel.LogCapacity,
			Eviction:  domain.EvictionPolicy(cfg.Channel.Eviction),
			ReadLimit: cfg.Channel.ReadLimit,
			Logger:    logger,
		},
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}

func newSecretStore(cfg config.Config) (ports.SecretStore, error) {
	switch cfg.Storage.Backend {
	case "file":
		return filestore.NewStore(cfg.SecretsDir()), nil
	case "pass":
		return passstore.NewStore(cfg.Storage.PassPrefix), nil
	case "chain":
		return chainstore.NewPassFirstWithFileFallback(cfg.Storage.PassPrefix, cfg.SecretsDir())
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

// errWriter resolves the command's stderr at write time so SetErr applies to
// loggers built before it was called.
type errWriter struct {
	cmd *cobra.Command
}

func (w errWriter) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

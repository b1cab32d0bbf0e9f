package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/practiceconsole/internal/console/store"
	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/aussiebroadwan/practiceconsole/pkg/cryptox"
	"github.com/aussiebroadwan/practiceconsole/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the console's wired dependencies for one invocation.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store   store.Store
	client  *consolesdk.SDKClient
	session *consolesdk.Session
	api     *consolesdk.API
}

// Option customises New.
type Option func(*options)

type options struct {
	logOutput io.Writer
	transport http.RoundTripper
	navigator consolesdk.Navigator
}

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithTransport sets the base HTTP transport under the logging transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithNavigator sets where the session sends the user after a reset.
func WithNavigator(nav consolesdk.Navigator) Option {
	return func(o *options) { o.navigator = nav }
}

// New validates cfg and wires the logger, credential store, API client and
// session.
func New(cfg Config, opts ...Option) (*Application, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "practiceconsole",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  o.logOutput,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initClient(o.transport, o.navigator); err != nil {
		_ = app.store.Close()
		return nil, err
	}

	return app, nil
}

// initStore opens the credential store, loading the master key first for the
// sealed drivers.
func (app *Application) initStore() error {
	scfg := store.Config{
		Driver:         app.cfg.CredentialStore,
		DatabaseFile:   app.cfg.DatabaseFile,
		CredentialFile: app.cfg.CredentialFile,
	}

	if scfg.Driver != store.DriverMemory {
		key, err := app.loadMasterKey()
		if err != nil {
			return err
		}
		scfg.MasterKey = key
	}

	s, err := store.Open(scfg)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	app.store = s

	app.logger.Debug("credential store opened", "driver", app.cfg.CredentialStore)
	return nil
}

func (app *Application) loadMasterKey() ([]byte, error) {
	if app.cfg.MasterKey != "" {
		return []byte(app.cfg.MasterKey), nil
	}

	path := app.cfg.masterKeyPath()
	key, err := cryptox.LoadOrCreateMasterKey(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load master key: %w", err)
	}

	app.logger.Debug("master key loaded", "path", path)
	return key, nil
}

func (app *Application) initClient(base http.RoundTripper, nav consolesdk.Navigator) error {
	httpClient := &http.Client{
		Timeout:   app.cfg.HTTPTimeout,
		Transport: slogx.NewTransport(base, app.logger),
	}

	client, err := consolesdk.NewSDKClient(app.cfg.BaseURL,
		consolesdk.WithHTTPClient(httpClient),
		consolesdk.WithCredentials(app.store),
		consolesdk.WithLogger(app.logger),
		consolesdk.WithUserAgent("practiceconsole/"+BuildVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to configure API client: %w", err)
	}

	app.client = client
	app.session = client.NewSession(nav)
	app.api = consolesdk.NewAPI(app.session)
	return nil
}

// Close releases the credential store.
func (app *Application) Close() error {
	if err := app.store.Close(); err != nil {
		app.logger.Error("error closing credential store", "error", err)
		return err
	}
	return nil
}

// CheckStore pings the credential store when its driver holds a connection.
// Drivers without one are always healthy.
func (app *Application) CheckStore(ctx context.Context) error {
	pinger, ok := app.store.(interface{ Ping(context.Context) error })
	if !ok {
		return nil
	}
	if err := pinger.Ping(ctx); err != nil {
		return fmt.Errorf("credential store unreachable: %w", err)
	}
	return nil
}

func (app *Application) Config() Config                { return app.cfg }
func (app *Application) Logger() *slog.Logger          { return app.logger }
func (app *Application) Session() *consolesdk.Session  { return app.session }
func (app *Application) API() *consolesdk.API          { return app.api }
func (app *Application) Client() *consolesdk.SDKClient { return app.client }

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/christopherstationary/website/core/config"
	"github.com/christopherstationary/website/core/email"
	"github.com/christopherstationary/website/core/event"
	"github.com/christopherstationary/website/core/form"
	"github.com/christopherstationary/website/core/i18n"
	"github.com/christopherstationary/website/core/i18n/locales"
	"github.com/christopherstationary/website/core/logger"
	"github.com/christopherstationary/website/core/preference"
	"github.com/christopherstationary/website/integration/database/pg"
	"github.com/christopherstationary/website/integration/database/redis"
	"github.com/christopherstationary/website/integration/email/postmark"
	"github.com/christopherstationary/website/integration/storage/s3"
)

var errUnknownBackend = errors.New("unknown backend")

// app holds the components shared by every command.
type app struct {
	cfg     Config
	log     *slog.Logger
	bus     *event.Bus
	prefs   preference.Store
	store   *i18n.Store
	checks  []check
	closers []func()
}

// check probes one external dependency for the health command.
type check struct {
	name string
	fn   func(context.Context) error
}

func newApp(ctx context.Context, opts *rootOptions, stderr io.Writer) (*app, error) {
	cfg := opts.cfg
	a := &app{cfg: cfg, log: newLogger(cfg, opts.verbose, stderr)}
	a.bus = event.NewBus(event.WithLogger(a.log))

	prefs, err := a.preferences(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.prefs = prefs

	src, err := a.source(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	// A one-off --lang must not overwrite the stored choice.
	storePrefs := prefs
	if opts.lang != "" {
		storePrefs = readOnlyPrefs{prefs}
	}

	a.store, err = i18n.NewStore(
		i18n.WithLanguages(cfg.Languages...),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithSource(src),
		i18n.WithPreferences(storePrefs),
		i18n.WithPublisher(a.bus),
		i18n.WithLogger(a.log),
		i18n.WithMissingKeyHandler(func(lang, key string) {
			a.log.Debug("missing translation", logger.Lang(lang), logger.Key("key", key))
		}),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create localization store: %w", err)
	}
	a.bus.Subscribe(a.store.Listener())
	a.bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt form.FormSubmitted) error {
		a.log.InfoContext(ctx, "submission recorded",
			logger.Form(evt.FormID),
			logger.Lang(evt.Lang),
			logger.Key("success", evt.Success))
		return nil
	}))

	// Load failures leave every key resolving to itself; commands keep working.
	_ = a.store.Load(ctx)

	if opts.lang != "" {
		if _, err := a.store.Switch(ctx, opts.lang); err != nil {
			a.close()
			return nil, err
		}
	}
	return a, nil
}

func newLogger(cfg Config, verbose bool, w io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithOutput(w)}
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.ServiceName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.ServiceName))
	}

	switch {
	case verbose:
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	case cfg.LogLevel != "":
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	default:
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	return logger.New(opts...)
}

func (a *app) close() {
	for _, fn := range slices.Backward(a.closers) {
		fn()
	}
	a.closers = nil
}

func (a *app) preferences(ctx context.Context) (preference.Store, error) {
	switch a.cfg.PreferenceBackend {
	case "memory":
		return preference.NewMemoryStore(), nil
	case "file":
		return preference.NewFileStore(a.cfg.PreferenceFile), nil
	case "redis":
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.checks = append(a.checks, check{name: "redis", fn: redis.Healthcheck(client)})
		return redis.NewPreferenceStore(client, redis.WithKeyPrefix(rc.KeyPrefix)), nil
	case "postgres":
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.checks = append(a.checks, check{name: "postgres", fn: pg.Healthcheck(pool)})
		store := pg.NewPreferenceStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: preference backend %q", errUnknownBackend, a.cfg.PreferenceBackend)
	}
}

func (a *app) source(ctx context.Context) (i18n.Source, error) {
	switch a.cfg.LocalesSource {
	case "embed":
		return i18n.NewFSSource(locales.FS, locales.Pattern), nil
	case "dir":
		return i18n.NewFSSource(os.DirFS(a.cfg.LocalesDir), a.cfg.LocalesPattern), nil
	case "http":
		if a.cfg.LocalesURL == "" {
			return nil, fmt.Errorf("LOCALES_URL is required for the http source")
		}
		return i18n.NewHTTPSource(a.cfg.LocalesURL), nil
	case "s3":
		return a.s3Source(ctx)
	default:
		return nil, fmt.Errorf("%w: locales source %q", errUnknownBackend, a.cfg.LocalesSource)
	}
}

func (a *app) s3Source(ctx context.Context) (*s3.Source, error) {
	var sc s3.Config
	if err := config.Load(&sc); err != nil {
		return nil, err
	}
	return s3.New(ctx, sc)
}

func (a *app) submitter() (form.Submitter, error) {
	switch a.cfg.Submitter {
	case "simulated":
		return &form.SimulatedSubmitter{Delay: a.cfg.SubmitDelay}, nil
	case "dev":
		return form.NewEmailSubmitter(email.NewDevSender(a.cfg.DevMailDir), a.cfg.ContactInbox)
	case "postmark":
		var pc postmark.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		sender, err := postmark.New(pc)
		if err != nil {
			return nil, err
		}
		return form.NewEmailSubmitter(sender, a.cfg.ContactInbox)
	default:
		return nil, fmt.Errorf("%w: submitter %q", errUnknownBackend, a.cfg.Submitter)
	}
}

// readOnlyPrefs drops writes.
type readOnlyPrefs struct {
	preference.Store
}

func (readOnlyPrefs) Set(context.Context, string, string) error { return nil }

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	"github.com/at-ishikawa/chemcalc/internal/config"
	"github.com/at-ishikawa/chemcalc/internal/database"
	"github.com/at-ishikawa/chemcalc/internal/session"
	"github.com/at-ishikawa/chemcalc/internal/translation"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// application is everything a command needs for one run.
type application struct {
	config  *config.Config
	session *session.Session
	// closers run in reverse order of registration.
	closers []func() error
}

func newApplication(ctx context.Context) (*application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	repository := compound.NewDBRepository(db)
	if err := repository.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository.EnsureSchema > %w", err)
	}

	app := &application{
		config:  cfg,
		closers: []func() error{db.Close},
	}
	backend := app.newTranslator()
	englishTranslator := translation.NewBestEffort(backend, translation.BreakerConfig{
		MaxFailures: cfg.Translation.Breaker.MaxFailures,
		Cooldown:    cfg.Translation.Breaker.Cooldown,
	})
	reader := compound.NewReader(compound.Config{
		BaseURL: cfg.Compound.BaseURL,
		Timeout: cfg.Compound.Timeout,
	})
	app.session = session.New(englishTranslator, reader, repository)

	slog.Default().Debug("application is ready",
		"database", cfg.Cache.DatabasePath,
		"translationProvider", cfg.Translation.Provider,
	)
	return app, nil
}

func (app *application) newTranslator() translation.Translator {
	cfg := app.config
	switch cfg.Translation.Provider {
	case config.TranslationProviderOpenAI:
		return translation.NewOpenAITranslator(translation.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.Translation.Timeout,
		})
	case config.TranslationProviderNone:
		return translation.Noop{}
	default:
		google := translation.NewGoogleTranslator(translation.GoogleConfig{
			BaseURL: cfg.Translation.Google.BaseURL,
			Timeout: cfg.Translation.Timeout,
		})
		app.closers = append(app.closers, google.Close)
		return google
	}
}

func (app *application) defaultUnit() calculator.Unit {
	unit := calculator.UnitGram
	// Validated by the config loader.
	_ = unit.Set(app.config.Calculator.DefaultUnit)
	return unit
}

func (app *application) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func closeApplication(app *application) {
	if err := app.Close(); err != nil {
		slog.Default().Warn("failed to close the application", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianifeng/folio/internal/config"
	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/contentdb"
	"github.com/jianifeng/folio/internal/logger"
)

type rootFlags struct {
	logLevel  string
	pretty    bool
	content   string
	contentDB string
	port      string
}

// app is what every command starts from: settings and a logger.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.pretty {
		cfg.LogFormat = "console"
	}
	if flags.content != "" {
		cfg.ContentPath = flags.content
	}
	if flags.contentDB != "" {
		cfg.ContentDB = flags.contentDB
	}
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.HumanReadableLogs(),
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &app{cfg: cfg, log: log}, nil
}

// loadCatalog reads the content database when one is configured and the
// YAML content otherwise.
func (a *app) loadCatalog(ctx context.Context) (*content.Catalog, error) {
	if a.cfg.ContentDB == "" {
		c, err := content.Load(a.cfg.ContentPath)
		if err != nil {
			return nil, err
		}
		source := a.cfg.ContentPath
		if source == "" {
			source = content.DefaultPath
		}
		a.log.With("source", source).Debug("content loaded")
		return c, nil
	}

	store, err := contentdb.Open(ctx, a.cfg.ContentDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	c, err := store.Load(ctx)
	if errors.Is(err, contentdb.ErrEmpty) {
		return nil, fmt.Errorf("%s holds no content, run folio import first: %w", a.cfg.ContentDB, err)
	}
	if err != nil {
		return nil, err
	}
	a.log.With("source", a.cfg.ContentDB).Debug("content loaded")
	return c, nil
}

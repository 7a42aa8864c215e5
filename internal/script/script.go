// Package script holds the setup shared by the maintenance commands: load
// config, build a console logger and open the database.
package script

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/config"
	"github.com/xavierca1/postcard-ads/internal/infra/database"
	"github.com/xavierca1/postcard-ads/internal/logger"
)

type Env struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sqlx.DB
	Out    io.Writer
}

func Open(ctx context.Context) (*Env, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, true)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Env{Config: cfg, Log: log, DB: db, Out: os.Stdout}, nil
}

func (e *Env) Close() {
	e.DB.Close()
	e.Log.Sync()
}

// Fail prints err the way every script reports a fatal error and returns
// the exit code to use.
func Fail(err error) int {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	return 1
}

package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/database"
	"github.com/xavierca1/postcard-ads/internal/script"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

// Per-row failures are printed and logged but do not change the exit code.
func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	env, err := script.Open(ctx)
	if err != nil {
		return script.Fail(err)
	}
	defer env.Close()

	uc := usecase.NewBackfillLandingPagesUseCase(
		database.NewAdSpotRepository(env.DB),
		database.NewLandingPageRepository(env.DB),
		env.Out,
	)
	report, err := uc.Execute(ctx)
	if err != nil {
		return script.Fail(err)
	}

	for _, item := range report.Failures() {
		env.Log.Warn("landing page not created", zap.String("ad_spot_id", item.ID), zap.String("slug", item.Slug), zap.Error(item.Err))
	}
	return 0
}

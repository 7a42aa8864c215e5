package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/database"
	"github.com/xavierca1/postcard-ads/internal/script"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

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

	env.Log.Info("rewriting qr code urls",
		zap.String("from", env.Config.QRPlaceholderBaseURL),
		zap.String("to", env.Config.PublicBaseURL),
	)

	uc := usecase.NewRewriteQRURLsUseCase(
		database.NewAdSpotRepository(env.DB),
		env.Config.QRPlaceholderBaseURL,
		env.Config.PublicBaseURL,
		env.Out,
	)
	report, err := uc.Execute(ctx)
	if err != nil {
		return script.Fail(err)
	}

	for _, item := range report.Failures() {
		env.Log.Warn("qr code url not updated", zap.String("ad_spot_id", item.ID), zap.String("before", item.Before), zap.Error(item.Err))
	}
	return 0
}

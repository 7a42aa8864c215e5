package main

import (
	"context"
	"os"

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

	uc := usecase.NewInspectSpotsUseCase(
		database.NewAdSpotRepository(env.DB),
		database.NewLandingPageRepository(env.DB),
		env.Out,
	)
	if _, err := uc.Execute(ctx); err != nil {
		return script.Fail(err)
	}
	return 0
}

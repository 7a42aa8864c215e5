package main

import (
	"context"
	"os"

	"github.com/xavierca1/postcard-ads/internal/infra/database"
	"github.com/xavierca1/postcard-ads/internal/script"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

// Prints the SQL needed to add analytics.event_type. It never runs DDL.
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

	uc := usecase.NewProbeAnalyticsSchemaUseCase(database.NewAnalyticsRepository(env.DB), env.Out)
	if _, err := uc.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

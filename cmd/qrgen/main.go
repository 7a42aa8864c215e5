package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/xavierca1/postcard-ads/internal/infra/qrcode"
)

type options struct {
	URL    string `env:"QR_URL,required"`
	Size   int    `env:"QR_SIZE,default=256"`
	Output string `env:"QR_OUTPUT,default=qr-code.png"`
}

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	var opts options
	if err := envconfig.Process(context.Background(), &opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}

	png, err := qrcode.NewRenderer().Render(opts.URL, opts.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to generate QR code: %v\n", err)
		return 1
	}

	if err := os.WriteFile(opts.Output, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to write %s: %v\n", opts.Output, err)
		return 1
	}

	fmt.Printf("✅ QR code for %s written to %s (%dpx)\n", opts.URL, opts.Output, opts.Size)
	return 0
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shreyachillal24/webphish-detector/internal/core"
	"github.com/shreyachillal24/webphish-detector/internal/di"
	"github.com/shreyachillal24/webphish-detector/internal/ports"
)

func main() {
	// Optional .env file for local runs
	_ = godotenv.Load()

	flags := di.ParseFlags()

	if flags.URL == "" {
		fmt.Println("Usage: phish-check [flags] <url>")
		fmt.Println("       phish-check -url <url> [flags]")
		os.Exit(2)
	}

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	var verdict *core.Verdict
	if err := container.Invoke(func(
		logger *zap.Logger,
		urlFilter ports.URLFilter,
		whoisCache core.WhoisCache,
	) error {
		defer logger.Sync()
		defer func() {
			if stopper, ok := whoisCache.(interface{ Stop() }); ok {
				stopper.Stop()
			}
		}()

		var err error
		verdict, err = urlFilter.ClassifyURL(context.Background(), flags.URL)
		return err
	}); err != nil {
		fmt.Printf("Classification error: %v\n", err)
		os.Exit(1)
	}

	// Non-zero exit for anything other than a legitimate verdict, so the
	// binary composes with shell pipelines
	if verdict.Label != core.LabelLegitimate {
		os.Exit(1)
	}
}

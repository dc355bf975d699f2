package main

import (
	"fmt"
	"os"
	"wellness-service/internal/cli"
	"wellness-service/internal/config"
	"wellness-service/internal/logger"

	_ "wellness-service/docs"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// @title Wellness Service API
// @version 1.0
// @description Mood, medication, supplement and habit tracking with analytics and reminders.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"./config/base.yaml" env:"CONFIG_PATH"`

	Serve     cli.ServeCmd     `cmd:"" help:"Run the gRPC server, HTTP gateway and reminder dispatcher." default:"1"`
	Export    cli.ExportCmd    `cmd:"" help:"Export every record of a user as JSON."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Print analytics for a date range."`
	Token     cli.TokenCmd     `cmd:"" help:"Mint a bearer token for the HTTP gateway."`
}

func main() {
	// variables already set in the environment take precedence over .env
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("wellness"),
		kong.Description("Personal wellness tracking service"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.LoadFile(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.OutputPath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(&cli.Context{Config: cfg, Out: os.Stdout}); err != nil {
		logger.Error("command failed", "command", ctx.Command(), "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

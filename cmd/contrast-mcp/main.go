package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ironsheep/contrast-tools-mcp/internal/config"
	"github.com/ironsheep/contrast-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var configPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("contrast-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s\n", args[i])
			os.Exit(2)
		}
	}

	// A missing .env is normal outside development. Variables already set in
	// the environment win over the file.
	_ = godotenv.Load()
	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr (stdout is for MCP protocol)
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)
	logger.Debug("starting contrast MCP server",
		"version", Version,
		"build_time", BuildTime,
		"commit", GitCommit,
		"config", configPath,
	)

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("contrast-tools-mcp - MCP server for WCAG color contrast checks")
	fmt.Println()
	fmt.Println("Usage: contrast-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>  Load settings from a YAML or TOML file")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Printf("  %s=<path>                 Config file\n", config.EnvConfigPath)
	fmt.Printf("  %s=debug               Log level (debug, info, warn, error)\n", config.EnvLogLevel)
	fmt.Printf("  %s=normal-text  Default content type\n", config.EnvDefaultContentType)
	fmt.Printf("  %s=AA                 Default conformance level\n", config.EnvDefaultLevel)
	fmt.Printf("  %s=both            Default preserve option\n", config.EnvDefaultPreserve)
	fmt.Printf("  %s=240              Preview width\n", config.EnvPreviewWidth)
	fmt.Printf("  %s=120             Preview height\n", config.EnvPreviewHeight)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

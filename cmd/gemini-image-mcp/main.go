package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gemini-image-mcp/internal/config"
	"github.com/ironsheep/gemini-image-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gemini-image-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("gemini-image-mcp - MCP server for Gemini image generation")
			fmt.Println()
			fmt.Println("Usage: gemini-image-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GEMINI_API_KEY     Gemini API key (required for generation calls)")
			fmt.Println("  GEMINI_BASE_URL    Override the API endpoint prefix")
			fmt.Println("  GEMINI_TIMEOUT     Per-call timeout (default 60s)")
			fmt.Println("  LOG_LEVEL          Log level: debug, info, warn, error (default info)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Log to stderr (stdout is for MCP protocol)
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	log.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
	}).Debug("starting gemini-image-mcp")

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

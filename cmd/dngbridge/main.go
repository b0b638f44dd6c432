// dngbridge: read-only MCP/HTTP bridge to IBM DOORS Next Generation.
//
// Exposes four DNG operations (project areas, requirement listing,
// requirement details, traceability links) either as MCP tools over stdio
// or as plain HTTP routes under /mcp/tools/dng.
//
// Usage:
//
//	dngbridge serve              # MCP server (stdio transport)
//	dngbridge serve --http :8080 # HTTP routes instead of stdio
//
// Configuration (read once at startup):
//
//	DNG_BASE_URL   base URL of the DNG server, e.g. https://dng.example.com/rm
//	DNG_USERNAME   username for DNG authentication
//	DNG_API_KEY    API key or password for DNG authentication
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dngbridge/internal/config"
	"dngbridge/internal/logging"
	dngserver "dngbridge/internal/server"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("dngbridge v%s\n", dngserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe(args []string) error {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	httpAddr := flags.String("http", "", "serve the HTTP routes on this address instead of stdio MCP")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Read once at startup, held for the process lifetime. Missing values
	// surface as ConfigurationError on first operation, not as a crash here.
	cfg := config.FromEnv()
	if !cfg.Complete() {
		logging.Warn("DNG configuration incomplete; operations will fail until it is set",
			"missing", cfg.Missing())
	}

	if *httpAddr != "" {
		return serveHTTP(cfg, *httpAddr)
	}
	return server.ServeStdio(dngserver.New(cfg))
}

// serveHTTP runs the REST boundary with graceful shutdown on interrupt.
func serveHTTP(cfg config.Config, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           dngserver.NewHTTPHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		logging.Info("shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `dngbridge v%s — read-only bridge to IBM DOORS Next Generation

Usage:
  dngbridge serve              Start the MCP server (stdio transport)
  dngbridge serve --http ADDR  Serve the HTTP routes on ADDR (e.g. :8080)
  dngbridge version            Print the version

Environment:
  DNG_BASE_URL   Base URL of the DNG server (e.g. https://dng.example.com/rm)
  DNG_USERNAME   Username for DNG authentication
  DNG_API_KEY    API key or password for DNG authentication

MCP configuration for an AI tool:

  {
    "mcpServers": {
      "dng": {
        "command": "dngbridge",
        "args": ["serve"]
      }
    }
  }
`, dngserver.Version)
}

// Command bookform compiles booking-form definitions to embeddable documents
// and serves them with the submission API behind them.
//
// Usage:
//
//	bookform generate -config form.yaml -output form.html [-locale en] [-padding 16px]
//	bookform serve [-config server.toml]
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

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/chauffeurkit/bookform/components/embedserver"
	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/render"
	"github.com/chauffeurkit/bookform/pkg/renderers/wizard"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bookform",
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:], logger)
	case "serve":
		err = runServe(os.Args[2:], logger)
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bookform <generate|serve> [flags]")
	fmt.Fprintln(os.Stderr, "  generate  compile a definition into a standalone document")
	fmt.Fprintln(os.Stderr, "  serve     serve the compiled form and its submission API")
}

func runGenerate(args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "definition file (YAML)")
	outputPath := fs.String("output", "", "output file; stdout when empty")
	locale := fs.String("locale", "", "render locale; definition default when empty")
	padding := fs.String("padding", "", "outer padding override, e.g. 16px")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("generate: -config is required")
	}

	def, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	renderer, err := wizard.New()
	if err != nil {
		return err
	}
	doc, err := renderer.Render(context.Background(), def, render.Options{
		Locale:  *locale,
		Padding: *padding,
	})
	if err != nil {
		return err
	}

	if *outputPath == "" {
		_, err = os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(*outputPath, doc, 0o644); err != nil {
		return err
	}
	logger.Info("document written", "path", *outputPath, "bytes", len(doc))
	return nil
}

// serverConfig is the TOML file read by the serve subcommand. Every field has
// a working default so `bookform serve -definition form.yaml` is enough.
type serverConfig struct {
	Addr            string   `toml:"addr"`
	Definition      string   `toml:"definition"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	CheckoutBaseURL string   `toml:"checkout_base_url"`
	ShutdownTimeout string   `toml:"shutdown_timeout"`
}

func runServe(args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "server configuration file (TOML)")
	definitionPath := fs.String("definition", "", "definition file; overrides the config file")
	addr := fs.String("addr", "", "listen address; overrides the config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Local overrides such as BOOKFORM_ADDR live in .env during development.
	_ = godotenv.Load()

	cfg := serverConfig{Addr: ":8080", ShutdownTimeout: "10s"}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return fmt.Errorf("serve: read %s: %w", *configPath, err)
		}
	}
	if env := os.Getenv("BOOKFORM_ADDR"); env != "" {
		cfg.Addr = env
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *definitionPath != "" {
		cfg.Definition = *definitionPath
	}
	if cfg.Definition == "" {
		return errors.New("serve: a definition file is required")
	}

	def, err := config.Load(cfg.Definition)
	if err != nil {
		return err
	}
	renderer, err := wizard.New()
	if err != nil {
		return err
	}

	component, err := embedserver.New(
		embedserver.WithDefinition(def),
		embedserver.WithRenderer(renderer),
		embedserver.WithAllowedOrigins(cfg.AllowedOrigins),
		embedserver.WithCheckoutService(embedserver.SandboxCheckout{BaseURL: cfg.CheckoutBaseURL}),
		embedserver.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           component.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "definition", cfg.Definition)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	timeout, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(ctx)
}

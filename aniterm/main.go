package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/config"
	"rhystmorgan/aniTerm/internal/logging"
	"rhystmorgan/aniTerm/internal/prompt"
	"rhystmorgan/aniTerm/internal/validation"
	"rhystmorgan/aniTerm/internal/views"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit code so deferred cleanup always happens
// before the process exits.
func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("aniterm", flag.ContinueOnError)
	flags.SetOutput(out)
	plain := flags.Bool("plain", false, "use line prompts instead of the full screen interface")
	lang := flags.String("lang", "", "message language (es or en)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(out, "Error loading configuration: %v\n", err)
		return 1
	}
	if *lang != "" {
		cfg.Language = *lang
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(out, "Error loading configuration: %v\n", err)
			return 1
		}
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(out, "Error initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("language", cfg.Language), zap.Bool("plain", *plain))

	if *plain {
		return runPlain(cfg, logger, out)
	}

	app, err := views.NewAppModel(cfg, logger)
	if err != nil {
		logger.Error("initialization failed", zap.Error(err))
		fmt.Fprintf(out, "Error initializing application: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(out, "Error running application: %v\n", err)
		return 1
	}
	return 0
}

func runPlain(cfg *config.AppConfig, logger *zap.Logger, out io.Writer) int {
	catalog := validation.NewCatalog(cfg.LanguageTag())
	runner := prompt.NewRunner(catalog, prompt.WithLogger(logger.Named("prompt")))

	if _, err := runner.Run(context.Background()); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return 0
		}
		logger.Error("plain mode failed", zap.Error(err))
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	return 0
}

package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formrunner/application/runner"
	"formrunner/domain/entities"
	"formrunner/infrastructure/browser"
	"formrunner/infrastructure/config"
	"formrunner/infrastructure/form"
	"formrunner/infrastructure/identity"
	"formrunner/infrastructure/storage"
	"formrunner/infrastructure/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInterrupted reports that the run was cut short by a signal. The
// in-flight submissions still completed and were counted.
var ErrInterrupted = errors.New("run interrupted")

type TerminalInterface struct {
	logger *logrus.Logger
	reader *bufio.Reader
	out    io.Writer
	store  *storage.Store
}

func NewTerminalInterface() (*TerminalInterface, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Setup logger
	logger := logrus.New()
	level, err := logrus.ParseLevel(config.String(config.EnvLogLevel, "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &TerminalInterface{
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		store:  storage.NewStore(),
	}, nil
}

func (t *TerminalInterface) Run() error {
	spec, err := t.buildRunSpec()
	if err != nil {
		return err
	}

	if err := validation.ValidateRunSpec(spec); err != nil {
		return err
	}

	// Remember the prompt answers for next run; not fatal when it fails.
	if err := t.store.Save(storage.Prefs{FormURL: spec.FormURL}); err != nil {
		t.logger.Warnf("could not save preferences: %v", err)
	}

	engine, err := browser.NewEngine(t.logger, browser.Options{
		Headless:   spec.Headless,
		NavTimeout: time.Duration(config.Int(config.EnvNavTimeout, 30000)) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ids := identity.NewSource(spec.Names)
	filler := form.NewFiller(t.logger)
	unit := runner.NewUnit(engine, filler, ids, t.logger)
	coordinator := runner.NewCoordinator(unit, t.logger)
	coordinator.SetRateLimit(spec.RateLimit)

	report := coordinator.Run(ctx, spec)
	fmt.Fprint(t.out, report.Summary())

	if ctx.Err() != nil {
		return ErrInterrupted
	}
	return nil
}

// buildRunSpec assembles the run either from a YAML profile (when
// FORM_PROFILE is set) or from the interactive prompts.
func (t *TerminalInterface) buildRunSpec() (entities.RunSpec, error) {
	headless := config.Bool(config.EnvHeadless, true)

	if path := os.Getenv(config.EnvProfile); path != "" {
		profile, err := config.LoadProfile(path)
		if err != nil {
			return entities.RunSpec{}, err
		}
		spec := profile.RunSpec(headless)
		applyEnvOverrides(&spec)
		return spec, nil
	}

	prefs, err := t.store.Load()
	if err != nil {
		t.logger.Warnf("could not load preferences: %v", err)
	}

	formURL, err := promptURL(t.reader, t.out, prefs.FormURL)
	if err != nil {
		return entities.RunSpec{}, err
	}

	count, err := promptCount(t.reader, t.out)
	if err != nil {
		return entities.RunSpec{}, err
	}

	names, err := promptNames(t.reader, t.out)
	if err != nil {
		return entities.RunSpec{}, err
	}

	fmt.Fprintf(t.out, "\nUsing %d names for submissions\n", len(names))
	if len(names) < count {
		fmt.Fprintf(t.out, "Random identities will be used for the remaining %d submissions\n", count-len(names))
	}

	spec := entities.RunSpec{
		FormURL:  formURL,
		Count:    count,
		Names:    names,
		Headless: headless,
	}
	applyEnvOverrides(&spec)
	return spec, nil
}

func applyEnvOverrides(spec *entities.RunSpec) {
	spec.MaxWorkers = config.Int(config.EnvMaxWorkers, spec.MaxWorkers)
	spec.RateLimit = config.Float(config.EnvRateLimit, spec.RateLimit)
}

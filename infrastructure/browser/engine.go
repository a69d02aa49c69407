package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"formrunner/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const defaultNavTimeout = 30 * time.Second

// Options configure the shared browser process.
type Options struct {
	Headless   bool
	NavTimeout time.Duration
}

// Engine owns the playwright driver and a single Chromium process.
// Each submission gets its own isolated context via OpenSession; the
// engine itself is safe for concurrent OpenSession calls.
type Engine struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	logger  *logrus.Logger
	opts    Options
}

// NewEngine starts playwright and launches the browser.
func NewEngine(logger *logrus.Logger, opts Options) (*Engine, error) {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = defaultNavTimeout
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-blink-features=AutomationControlled",
			"--disable-notifications",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Infof("Browser launched (headless=%v)", opts.Headless)

	return &Engine{
		pw:      pw,
		browser: browser,
		logger:  logger,
		opts:    opts,
	}, nil
}

// OpenSession creates a fresh browser context and page. The returned
// session is exclusively owned by the caller.
func (e *Engine) OpenSession(ctx context.Context) (interfaces.Session, error) {
	bctx, err := e.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(float64(e.opts.NavTimeout.Milliseconds()))

	return &session{bctx: bctx, page: page, navTimeout: e.opts.NavTimeout}, nil
}

// Close shuts the browser down. Errors from an already-closed target
// are swallowed.
func (e *Engine) Close() error {
	var closeErr error

	if e.browser != nil {
		if err := e.browser.Close(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		e.browser = nil
	}

	if e.pw != nil {
		if err := e.pw.Stop(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to stop playwright: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to stop playwright: %w", err)
			}
		}
		e.pw = nil
	}

	return closeErr
}

func isClosedErr(err error) bool {
	s := err.Error()
	return strings.Contains(s, "closed") || strings.Contains(s, "target closed")
}

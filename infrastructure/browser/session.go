package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"formrunner/domain/interfaces"

	"github.com/playwright-community/playwright-go"
)

type session struct {
	bctx       playwright.BrowserContext
	page       playwright.Page
	navTimeout time.Duration
}

// Navigate - loads the URL and waits for the network to go idle
func (s *session) Navigate(ctx context.Context, url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64((2 * s.navTimeout).Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// WaitReady - waits for the page to settle after navigation
func (s *session) WaitReady(ctx context.Context) error {
	return s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(s.navTimeout.Milliseconds())),
	})
}

// Find - returns all elements matching the selector
func (s *session) Find(selector string) []interfaces.Element {
	locs, err := s.page.Locator(selector).All()
	if err != nil {
		return nil
	}
	els := make([]interfaces.Element, 0, len(locs))
	for _, loc := range locs {
		els = append(els, &element{loc: loc})
	}
	return els
}

// FindOne - returns the first element matching the selector, or nil
func (s *session) FindOne(selector string) interfaces.Element {
	loc := s.page.Locator(selector)
	count, err := loc.Count()
	if err != nil || count == 0 {
		return nil
	}
	return &element{loc: loc.First()}
}

// WaitVisible - waits for a matching element to become visible
func (s *session) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// WaitURL - waits for the page URL to match a glob pattern
func (s *session) WaitURL(ctx context.Context, pattern string, timeout time.Duration) error {
	return s.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (s *session) URL() string {
	return s.page.URL()
}

// Close - releases the browser context backing this session
func (s *session) Close() error {
	if s.bctx == nil {
		return nil
	}
	err := s.bctx.Close()
	s.bctx = nil
	if err != nil && !isClosedErr(err) {
		return fmt.Errorf("failed to close context: %w", err)
	}
	return nil
}

type element struct {
	loc playwright.Locator
}

func (e *element) Visible() bool {
	visible, err := e.loc.IsVisible()
	return err == nil && visible
}

func (e *element) Text() string {
	text, err := e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(2000),
	})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func (e *element) Attribute(name string) string {
	value, err := e.loc.GetAttribute(name)
	if err != nil {
		return ""
	}
	return value
}

func (e *element) Fill(text string) error {
	if err := e.loc.Clear(); err != nil {
		return err
	}
	return e.loc.Fill(text)
}

func (e *element) Click() error {
	// Best effort; the click itself reports the real failure.
	e.loc.ScrollIntoViewIfNeeded()
	return e.loc.Click()
}

func (e *element) Find(selector string) []interfaces.Element {
	locs, err := e.loc.Locator(selector).All()
	if err != nil {
		return nil
	}
	els := make([]interfaces.Element, 0, len(locs))
	for _, loc := range locs {
		els = append(els, &element{loc: loc})
	}
	return els
}

func (e *element) FindOne(selector string) interfaces.Element {
	loc := e.loc.Locator(selector)
	count, err := loc.Count()
	if err != nil || count == 0 {
		return nil
	}
	return &element{loc: loc.First()}
}

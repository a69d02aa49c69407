package interfaces

import (
	"context"
	"time"
)

// Element is a single control on the page.
type Element interface {
	Visible() bool
	Text() string
	Attribute(name string) string
	Fill(text string) error
	Click() error

	// Find returns the element's descendants matching selector.
	Find(selector string) []Element

	// FindOne returns the first descendant matching selector, or nil.
	FindOne(selector string) Element
}

// Session is one isolated browser session. A session is exclusively
// owned by the submission that opened it and must be closed on every
// exit path.
type Session interface {
	Navigate(ctx context.Context, url string) error

	// WaitReady waits for the page to settle after navigation.
	WaitReady(ctx context.Context) error

	Find(selector string) []Element
	FindOne(selector string) Element

	// WaitVisible blocks until an element matching selector is visible
	// or the timeout expires.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// WaitURL blocks until the page URL matches the glob pattern or the
	// timeout expires.
	WaitURL(ctx context.Context, pattern string, timeout time.Duration) error

	URL() string
	Close() error
}

// SessionFactory opens fresh, isolated sessions. Sessions share the
// underlying browser process but nothing else.
type SessionFactory interface {
	OpenSession(ctx context.Context) (Session, error)
}

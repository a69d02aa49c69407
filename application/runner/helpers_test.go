package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"formrunner/domain/entities"
	"formrunner/domain/interfaces"
	"formrunner/infrastructure/identity"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type stubSession struct {
	closes atomic.Int32
}

func (s *stubSession) Navigate(ctx context.Context, url string) error { return nil }
func (s *stubSession) WaitReady(ctx context.Context) error            { return nil }
func (s *stubSession) Find(selector string) []interfaces.Element      { return nil }
func (s *stubSession) FindOne(selector string) interfaces.Element     { return nil }
func (s *stubSession) URL() string                                    { return "" }

func (s *stubSession) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return nil
}

func (s *stubSession) WaitURL(ctx context.Context, pattern string, timeout time.Duration) error {
	return nil
}

func (s *stubSession) Close() error {
	s.closes.Add(1)
	return nil
}

type stubFactory struct {
	mu       sync.Mutex
	sessions []*stubSession
	openErr  error
}

func (f *stubFactory) OpenSession(ctx context.Context) (interfaces.Session, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	sess := &stubSession{}
	f.mu.Lock()
	f.sessions = append(f.sessions, sess)
	f.mu.Unlock()
	return sess, nil
}

func (f *stubFactory) opened() []*stubSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*stubSession(nil), f.sessions...)
}

// protocolFunc adapts a function into a Protocol.
type protocolFunc func(ctx context.Context, sess interfaces.Session, ident entities.Identity, formURL string) error

func (fn protocolFunc) Submit(ctx context.Context, sess interfaces.Session, ident entities.Identity, formURL string) error {
	return fn(ctx, sess, ident, formURL)
}

func succeedAlways() protocolFunc {
	return func(context.Context, interfaces.Session, entities.Identity, string) error {
		return nil
	}
}

func newTestUnit(protocol Protocol, names []string) (*Unit, *stubFactory, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	factory := &stubFactory{}
	unit := NewUnit(factory, protocol, identity.NewSource(names), logger)
	return unit, factory, hook
}

func testSpec(count int, names []string) entities.RunSpec {
	return entities.RunSpec{
		FormURL: "https://example.com/form",
		Count:   count,
		Names:   names,
	}
}

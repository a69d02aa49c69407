package runner

import (
	"context"
	"fmt"
	"time"

	"formrunner/domain/entities"
	"formrunner/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Protocol drives one session through a complete form submission. A nil
// return means the submission was confirmed.
type Protocol interface {
	Submit(ctx context.Context, sess interfaces.Session, ident entities.Identity, formURL string) error
}

// Unit runs one independent form submission: acquire a fresh session,
// run the protocol, release the session on every exit path. No error or
// panic escapes Execute; everything collapses into the Outcome.
type Unit struct {
	sessions interfaces.SessionFactory
	protocol Protocol
	ids      interfaces.IdentitySource
	logger   *logrus.Logger
}

func NewUnit(sessions interfaces.SessionFactory, protocol Protocol, ids interfaces.IdentitySource, logger *logrus.Logger) *Unit {
	return &Unit{
		sessions: sessions,
		protocol: protocol,
		ids:      ids,
		logger:   logger,
	}
}

// Execute performs the submission for one dispatch index. The index
// alone determines which identity is used, so assignment does not
// depend on scheduling.
func (u *Unit) Execute(ctx context.Context, index int, formURL string) (out entities.Outcome) {
	start := time.Now()
	out = entities.Outcome{TaskIndex: index}
	log := u.logger.WithField("submission", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			out.Success = false
			out.Err = fmt.Errorf("submission panicked: %v", r)
		}
		out.Elapsed = time.Since(start)
		if out.Success {
			log.Infof("submission %d succeeded in %s", index, out.Elapsed.Round(time.Millisecond))
		} else {
			log.Warnf("submission %d failed after %s: %v", index, out.Elapsed.Round(time.Millisecond), out.Err)
		}
	}()

	ident := u.ids.IdentityAt(index)
	out.Identity = ident.FullName
	log.Infof("submission %d using identity %q", index, ident.FullName)

	sess, err := u.sessions.OpenSession(ctx)
	if err != nil {
		out.Err = fmt.Errorf("open session: %w", err)
		return out
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warnf("session close: %v", cerr)
		}
	}()

	if err := u.protocol.Submit(ctx, sess, ident, formURL); err != nil {
		out.Err = err
		return out
	}

	out.Success = true
	return out
}

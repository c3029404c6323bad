package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"secure-intent-router/pkg/log"
)

// Publisher is the subset of *nats.Conn used by NATSSink.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes records as JSON on a subject.
type NATSSink struct {
	pub     Publisher
	subject string
}

func NewNATSSink(pub Publisher, subject string) *NATSSink {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSSink{pub: pub, subject: subject}
}

func (s *NATSSink) Publish(_ context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: encode record: %w", LogPrefixNATS, err)
	}
	if err := s.pub.Publish(s.subject, data); err != nil {
		return fmt.Errorf("%s: publish to %s: %w", LogPrefixNATS, s.subject, err)
	}
	return nil
}

// Connect opens a NATS connection with reconnect handlers logging through l.
func Connect(ctx context.Context, url, name string, l log.Logger) (*nats.Conn, error) {
	l.Infof(ctx, "%s: connecting to %s as %s", LogPrefixConnect, url, name)

	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(60),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			l.Warnf(ctx, "%s: disconnected: %v", LogPrefixConnect, err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			l.Infof(ctx, "%s: reconnected to %s", LogPrefixConnect, nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			l.Infof(ctx, "%s: connection closed", LogPrefixConnect)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixConnect, err)
	}
	return nc, nil
}

// Package logger configures logrus and carries request-scoped log fields.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ContextKey is the type of context keys set by this package.
type ContextKey string

const (
	// RequestIDKey holds the request id in a context.
	RequestIDKey ContextKey = "requestID"
	// UserIDKey holds the authenticated account id in a context.
	UserIDKey ContextKey = "userID"
	// BusinessIDKey holds the current business id in a context.
	BusinessIDKey ContextKey = "businessID"
)

// Setup configures the standard logrus logger. Unknown levels fall back to
// info and unknown formats to text.
func Setup(level, format string) {
	Configure(logrus.StandardLogger(), level, format, os.Stdout)
}

// Configure applies level, format and output to l.
func Configure(l *logrus.Logger, level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetOutput(out)

	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithContext returns an entry carrying the request fields stored in ctx.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.WithContext(ctx)
	if ctx == nil {
		return entry
	}
	if v := ctx.Value(RequestIDKey); v != nil {
		entry = entry.WithField("request_id", v)
	}
	if v := ctx.Value(UserIDKey); v != nil {
		entry = entry.WithField("user_id", v)
	}
	if v := ctx.Value(BusinessIDKey); v != nil {
		entry = entry.WithField("business_id", v)
	}
	return entry
}

package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Context keys copied into every entry when present. Fiber stores locals as
// request user values, so handlers can pass c.Context() straight through.
const (
	RequestIDKey = "requestid"
	UserIDKey    = "user_id"
	ClientIPKey  = "client_ip"
	UserAgentKey = "user_agent"
)

type Logger interface {
	// Debug level message with alternating key/value pairs.
	Debug(ctx context.Context, msg string, args ...interface{})

	// Info level message with alternating key/value pairs.
	Info(ctx context.Context, msg string, args ...interface{})

	// Warn level message with alternating key/value pairs.
	Warn(ctx context.Context, msg string, args ...interface{})

	// Error level message with alternating key/value pairs.
	Error(ctx context.Context, msg string, args ...interface{})

	// Writer used to print logs.
	Writer() io.Writer
}

type CtxLogger struct {
	log  *logrus.Logger
	keys []string
}

// New returns a JSON logrus logger at the given level that copies the
// request metadata keys from the context into each entry.
func New(level string) *CtxLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return NewWithLogrus(l, RequestIDKey, UserIDKey, ClientIPKey, UserAgentKey)
}

func NewWithLogrus(l *logrus.Logger, ctxKeys ...string) *CtxLogger {
	return &CtxLogger{log: l, keys: ctxKeys}
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx, args).Debug(msg)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx, args).Info(msg)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx, args).Warn(msg)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx, args).Error(msg)
}

func (l *CtxLogger) Writer() io.Writer {
	return l.log.Writer()
}

func (l *CtxLogger) entry(ctx context.Context, args []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = fieldValue(args[i+1])
	}
	if len(args)%2 == 1 {
		fields["extra"] = fieldValue(args[len(args)-1])
	}

	if ctx != nil {
		for _, key := range l.keys {
			switch v := ctx.Value(key).(type) {
			case string:
				fields[key] = v
			case fmt.Stringer:
				fields[key] = v.String()
			}
		}
	}
	return l.log.WithFields(fields)
}

func fieldValue(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return v
	}
}

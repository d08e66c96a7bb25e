package logger

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "gateway-logger"

	// requestIDHeader carries the caller supplied correlation id, if any.
	requestIDHeader = "X-Request-ID"
)

var (
	base     *zap.SugaredLogger
	baseOnce sync.Once
)

// Provider returns a request scoped logger for the given context.
type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the process wide zap logger. Request loggers
// created by NewLogger derive from it.
func NewLogging(ctx context.Context) (*Logging, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	base = zl.Sugar()

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Logger wraps a zap sugared logger with a per-request trace id.
type Logger struct {
	started time.Time
	trace   string
	zl      *zap.SugaredLogger
}

// NewLogger sets gin.Context with a new request logger, with the
// related trace id taken from the request or generated.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get(requestIDHeader)
	}

	if h != "" {
		l.trace = h
	}

	l.zl = l.zl.With("trace", l.trace)

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't a logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func newDefaultLogger() *Logger {
	baseOnce.Do(func() {
		if base == nil {
			zl, err := zap.NewDevelopment(zap.AddCallerSkip(1))
			if err != nil {
				zl = zap.NewNop()
			}

			base = zl.Sugar()
		}
	})

	started := time.Now()

	return &Logger{
		started: started,
		trace:   strconv.FormatInt(started.UnixNano(), 36),
		zl:      base,
	}
}

// Trace returns the trace id associated with this request.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel attaches a label to every subsequent log line of this request.
func (l *Logger) SetLabel(key, value string) {
	l.zl = l.zl.With(key, value)
}

func (l *Logger) SetLabels(labels map[string]string) {
	for k, v := range labels {
		l.SetLabel(k, v)
	}
}

// End flushes any buffered log entries for this request.
func (l *Logger) End(ctx *gin.Context) {
	_ = l.zl.Sync()
}

func (l *Logger) Debug(v ...interface{})   { l.zl.Debug(v...) }
func (l *Logger) Info(v ...interface{})    { l.zl.Info(v...) }
func (l *Logger) Print(v ...interface{})   { l.zl.Info(v...) }
func (l *Logger) Warning(v ...interface{}) { l.zl.Warn(v...) }
func (l *Logger) Error(v ...interface{})   { l.zl.Error(v...) }

func (l *Logger) Debugf(format string, v ...interface{})   { l.zl.Debugf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})    { l.zl.Infof(format, v...) }
func (l *Logger) Printf(format string, v ...interface{})   { l.zl.Infof(format, v...) }
func (l *Logger) Warningf(format string, v ...interface{}) { l.zl.Warnf(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{})   { l.zl.Errorf(format, v...) }

func (l *Logger) Debugln(v ...interface{})   { l.zl.Debug(sprintln(v...)) }
func (l *Logger) Infoln(v ...interface{})    { l.zl.Info(sprintln(v...)) }
func (l *Logger) Println(v ...interface{})   { l.zl.Info(sprintln(v...)) }
func (l *Logger) Warningln(v ...interface{}) { l.zl.Warn(sprintln(v...)) }
func (l *Logger) Errorln(v ...interface{})   { l.zl.Error(sprintln(v...)) }

func sprintln(v ...interface{}) string {
	s := fmt.Sprintln(v...)
	return s[:len(s)-1]
}

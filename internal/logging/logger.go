package logging

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var level = func() *slog.LevelVar {
	l := &slog.LevelVar{}
	l.Set(slog.LevelInfo)
	return l
}()

var rootLogger atomic.Pointer[slog.Logger]

func init() {
	SetOutput(os.Stdout)
}

// SetOutput redirects the JSON logs, loggers built before the call keep writing to the previous output
func SetOutput(w io.Writer) {
	rootLogger.Store(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built by this package, including ones built before the call
func SetLevel(levelName string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(levelName)))); err != nil {
		return fmt.Errorf("unknown log level %q, expected debug, info, warn or error", levelName)
	}
	level.Set(l)
	return nil
}

func BuildLogger() *Logger {
	return &Logger{Logger: rootLogger.Load()}
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := Logger{Logger: rootLogger.Load().With("path", ctx.Request.URL.Path)}
	return &logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

package main

import (
	"fmt"
	"io"
	"log/slog"
)

// slogLogger adapts a slog.Logger to the printf-style dynamo.Logger.
type slogLogger struct {
	l *slog.Logger
}

func newSlogLogger(w io.Writer, verbose bool) *slogLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slogLogger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (s *slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }

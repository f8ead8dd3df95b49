package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/kardash/internal/logger"
)

// errorLogWriter forwards net/http's internal errors to zerolog.
type errorLogWriter struct {
	logger *logger.Logger
}

func (w errorLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("source", "net/http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

func newServerErrorLog(logger *logger.Logger) *log.Logger {
	return log.New(errorLogWriter{logger: logger}, "", 0)
}
